package services

import (
	"fmt"
	"math"

	"github.com/PriyancySingal/group-travel-final-sub002/internal/models/response_models"
	"github.com/PriyancySingal/group-travel-final-sub002/pkg/utils"
)

// shareSumTolerance absorbs float noise when checking that custom shares sum
// to the total; anything beyond it counts as a mismatch.
const shareSumTolerance = 1e-9

type MemberAllocatorInterface interface {
	SplitEqually(totalAmount float64, memberCount int) (*response_models.MemberSplit, error)
	SplitCustom(totalAmount float64, customShares []response_models.MemberShare) (*response_models.MemberSplit, error)
}

type MemberAllocator struct{}

func NewMemberAllocator() MemberAllocatorInterface {
	return &MemberAllocator{}
}

// SplitEqually gives every member the ceiling share and the last member the
// exact remainder, so the shares always sum to totalAmount and nobody but the
// last member is shortchanged by rounding.
func (m *MemberAllocator) SplitEqually(totalAmount float64, memberCount int) (*response_models.MemberSplit, error) {
	if memberCount < 1 || totalAmount < 0 {
		return nil, utils.ErrInvalidInput
	}

	perMember := utils.CeilDiv(totalAmount, memberCount)

	shares := make([]response_models.MemberShare, 0, memberCount)
	assigned := 0.0
	for i := 1; i < memberCount; i++ {
		shares = append(shares, response_models.MemberShare{
			MemberKey: memberKey(i),
			Amount:    perMember,
		})
		assigned += perMember
	}
	shares = append(shares, response_models.MemberShare{
		MemberKey: memberKey(memberCount),
		Amount:    totalAmount - assigned,
	})

	return &response_models.MemberSplit{
		TotalAmount: totalAmount,
		Shares:      shares,
	}, nil
}

// SplitCustom validates a caller-supplied allocation. A sum mismatch does not
// fail the call: the allocator falls back to an equal split and flags the
// fallback, keeping booking flows non-blocking.
func (m *MemberAllocator) SplitCustom(totalAmount float64, customShares []response_models.MemberShare) (*response_models.MemberSplit, error) {
	if len(customShares) == 0 || totalAmount < 0 {
		return nil, utils.ErrInvalidInput
	}

	sum := 0.0
	for _, share := range customShares {
		sum += share.Amount
	}

	if math.Abs(sum-totalAmount) > shareSumTolerance {
		split, err := m.SplitEqually(totalAmount, len(customShares))
		if err != nil {
			return nil, err
		}
		split.FallbackApplied = true
		split.Warning = fmt.Sprintf("custom shares sum to %.2f, expected %.2f; applied equal split", sum, totalAmount)
		return split, nil
	}

	shares := make([]response_models.MemberShare, len(customShares))
	copy(shares, customShares)

	return &response_models.MemberSplit{
		TotalAmount: totalAmount,
		Shares:      shares,
	}, nil
}

func memberKey(position int) string {
	return fmt.Sprintf("member_%d", position)
}
