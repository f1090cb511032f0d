// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package client is the board's frontend logic: a typed API client, the
list-state controller, and the persisted "already voted" marker.

# API Client

Client wraps the four endpoints and decodes the response envelope:

	api := client.New("http://localhost:5001")
	items, err := api.List(ctx, "bug", models.SortMostUpvoted)

A success=false response becomes an *APIError carrying the HTTP status
and the server's message; transport failures are wrapped errors.

# Vote Marker

VoteMarker is the injectable "items I've upvoted" set. FileVoteMarker
persists it as a JSON array in one file (the local-storage analog);
corrupted or missing content is treated as empty. MemoryVoteMarker
backs tests.

# Controller

Controller holds the fetched items, the active category/sort selection,
and the marker, and applies the frontend's consistency rules:

  - a selection change triggers a full refetch, and a stale in-flight
    response never overwrites a newer one;
  - a successful submit refetches;
  - a successful upvote patches the one affected count in place, and
    refetches only when the active sort is mostUpvoted;
  - an upvote on an already-marked item is suppressed locally;
  - a failed fetch leaves the previously loaded items intact.

# Rendering

FormatCard renders one item as a terminal card with a humanized
relative timestamp; feedbackctl uses it for list output.
*/
package client
