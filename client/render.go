// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

package client

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/feedbackboard/server/models"
)

// FormatCard renders one feedback item as a terminal card. A leading
// asterisk on the upvote count marks items this profile already voted
// for.
func FormatCard(item models.FeedbackItem, voted bool) string {
	mark := ""
	if voted {
		mark = "*"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", item.Title, item.Category)
	fmt.Fprintf(&b, "  %s\n", item.Description)
	fmt.Fprintf(&b, "  %s%d upvote%s | submitted %s | %s\n",
		mark, item.Upvotes, plural(item.Upvotes), humanize.Time(item.CreatedAt), item.ID)
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
