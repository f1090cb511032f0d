// Copyright (c) 2026 Feedback Board Authors.
// Licensed under the MIT License; see LICENSE.

/*
Package store is the persistence and query layer for feedback items.

# Operations

FeedbackStore wraps a *sql.DB and exposes the four lifecycle operations:

	st := store.New(conn)
	item, err := st.Create(ctx, req)           // validate, assign id/createdAt, insert
	items, err := st.List(ctx, category, sort) // filter + order
	item, err := st.GetByID(ctx, id)
	item, err := st.Upvote(ctx, id)            // atomic increment

# Validation

Create enforces the struct tags on models.SubmitFeedbackRequest through
validator/v10 and returns a *ValidationError carrying one message per
failed field. The title is trimmed before the length check.

# Query Contract

List applies an optional category equality filter and one of two total
orders: created_at descending ("recent", also the default for any other
value) or upvotes descending ("mostUpvoted"). Both orders tie-break on
id ascending, so repeated listings are deterministic.

# Upvote Atomicity

Upvote executes a single

	UPDATE feedback SET upvotes = upvotes + 1 WHERE id = $1 RETURNING ...

so the increment happens inside the storage engine. N concurrent
upvotes of the same item always total +N; there is no read-modify-write
window to lose one in.

# Errors

	ErrInvalidID     - identifier is not a UUID
	ErrNotFound      - no item with that identifier
	*ValidationError - submit validation failed

Anything else is a wrapped storage error.
*/
package store
