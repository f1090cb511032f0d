// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitFeedbackRequest: title, description, category

Validation rules live on the struct tags (required, max length, category
enumeration) and are enforced by the store via validator/v10.

# Response Types

Every endpoint answers with the same envelope shape:

	{ "success": bool, "data": ..., "count": ..., "message": ... }

  - ItemResponse: single feedback item plus optional message
  - ListResponse: item sequence plus count
  - ErrorResponse: success=false plus a human-readable message

# Domain Types

  - FeedbackItem: one user-submitted feedback entry. The id is a UUID
    assigned at creation, createdAt is server-assigned, and upvotes only
    ever grows by one per successful upvote.

# Constants

Categories:

	CategoryFeature     = "feature"
	CategoryBug         = "bug"
	CategoryImprovement = "improvement"
	CategoryOther       = "other"

Sort orders:

	SortRecent      = "recent"
	SortMostUpvoted = "mostUpvoted"
*/
package models
