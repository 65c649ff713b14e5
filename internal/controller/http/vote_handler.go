package http

import (
	"context"
	"net/http"
	"time"

	"flow-social/internal/chain"
	"flow-social/internal/entity"
	"flow-social/internal/usecase"
	"flow-social/pkg/logger"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteUseCase usecase.VoteUseCase
	submitter   chain.Submitter
	voteAmount  float64
	txWait      time.Duration
	logger      *logger.Logger
}

func NewVoteHandler(voteUseCase usecase.VoteUseCase, submitter chain.Submitter, voteAmount float64, logger *logger.Logger) *VoteHandler {
	return &VoteHandler{
		voteUseCase: voteUseCase,
		submitter:   submitter,
		voteAmount:  voteAmount,
		txWait:      2 * time.Second,
		logger:      logger,
	}
}

// VoteRequest accepts the canonical field names and the legacy aliases the
// older surface used.
type VoteRequest struct {
	Voter     string `json:"voter"`
	Direction string `json:"direction"`

	UserAddress string `json:"userAddress"`
	VoteType    string `json:"voteType"`
}

func (r *VoteRequest) normalize() (string, entity.VoteDirection) {
	voter := r.Voter
	if voter == "" {
		voter = r.UserAddress
	}
	direction := r.Direction
	if direction == "" {
		direction = r.VoteType
	}
	return voter, entity.VoteDirection(direction)
}

// VotePost godoc
// @Summary      Vote on a post
// @Description  Toggle an up/down vote for the voter and return the post's fresh state. The on-chain receipt is attached as "tx" when the submission completes in time.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        vote body VoteRequest true "Vote payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/vote [post]
func (h *VoteHandler) VotePost(c *gin.Context) {
	postID := c.Param("id")

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	voter, direction := req.normalize()
	if voter == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Voter address is required"})
		return
	}
	if !direction.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Vote direction must be "up" or "down"`})
		return
	}

	// The on-chain recording runs alongside the authoritative mutation.
	// Its outcome is attached to the response when available and never
	// rolls the vote back.
	txCh := make(chan *chain.TxResult, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := h.submitter.SubmitVote(ctx, chain.VoteTransaction{
			PostID:     postID,
			Voter:      voter,
			Direction:  string(direction),
			AmountFlow: h.voteAmount,
		})
		if err != nil {
			h.logger.Warn("On-chain vote submission failed (advisory): %v (post_id=%s)", err, postID)
			txCh <- nil
			return
		}
		txCh <- result
	}()

	post, err := h.voteUseCase.Vote(postID, voter, direction)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := gin.H{"post": post}
	select {
	case result := <-txCh:
		if result != nil {
			response["tx"] = result
		}
	case <-time.After(h.txWait):
		// respond without the receipt rather than hold the request
	}

	c.JSON(http.StatusOK, response)
}
