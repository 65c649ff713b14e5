package entity

type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

func (d VoteDirection) Valid() bool {
	return d == VoteUp || d == VoteDown
}

// VoteState is the current vote a single user holds on a single post.
type VoteState string

const (
	NoVote    VoteState = ""
	VotedUp   VoteState = "up"
	VotedDown VoteState = "down"
)

// VoteDelta is the additive change a transition applies to the post counters.
type VoteDelta struct {
	Upvotes   int
	Downvotes int
}

// ApplyVote transitions a user's vote on a post. Repeating the held direction
// removes the vote, the opposite direction flips it, and a fresh vote records it.
// The returned delta keeps the post counters equal to the number of held votes.
func ApplyVote(current VoteState, requested VoteDirection) (VoteState, VoteDelta) {
	var delta VoteDelta

	switch current {
	case VotedUp:
		if requested == VoteUp {
			delta.Upvotes = -1
			return NoVote, delta
		}
		delta.Upvotes = -1
		delta.Downvotes = 1
		return VotedDown, delta
	case VotedDown:
		if requested == VoteDown {
			delta.Downvotes = -1
			return NoVote, delta
		}
		delta.Downvotes = -1
		delta.Upvotes = 1
		return VotedUp, delta
	default:
		if requested == VoteUp {
			delta.Upvotes = 1
			return VotedUp, delta
		}
		delta.Downvotes = 1
		return VotedDown, delta
	}
}
