package models

// VoteDirection is the sign of a vote on an issue. Only the two values
// below are accepted anywhere in the system.
type VoteDirection int

const (
	Upvote   VoteDirection = 1
	Downvote VoteDirection = -1
)

func (d VoteDirection) Valid() bool {
	return d == Upvote || d == Downvote
}
