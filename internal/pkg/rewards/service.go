package rewards

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"

	"github.com/EcoGuardHQ/EcoGuard/app/models"
	"github.com/EcoGuardHQ/EcoGuard/app/repository"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/audit"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/auth"
)

var (
	ErrRewardNotFound     = errors.New("reward not found")
	ErrInsufficientPoints = errors.New("not enough points for this reward")
)

// Service is the reward manager: the seeded catalog and point redemption.
type Service struct {
	rewards repository.RewardRepository
	users   repository.UserRepository
	audit   *audit.Recorder
}

// NewService wires the reward manager.
func NewService(rewards repository.RewardRepository, users repository.UserRepository, recorder *audit.Recorder) *Service {
	return &Service{
		rewards: rewards,
		users:   users,
		audit:   recorder,
	}
}

// SeedCatalog inserts the default rewards once, when the catalog is empty.
// The catalog is immutable in normal operation afterwards.
func (s *Service) SeedCatalog() error {
	count, err := s.rewards.Count()
	if err != nil {
		return fmt.Errorf("count rewards: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, reward := range models.DefaultRewards() {
		r := reward
		if err := s.rewards.Create(&r); err != nil {
			return fmt.Errorf("seed reward %q: %w", r.Name, err)
		}
	}
	log.Info("[Rewards] seeded default catalog")
	return nil
}

// Catalog returns all catalog entries.
func (s *Service) Catalog() ([]models.Reward, error) {
	return s.rewards.GetAll()
}

// Redeem exchanges the session user's points for a catalog reward. The
// sufficiency check and the debit are one conditional UPDATE against the
// stored balance, not the session snapshot, so concurrent redemptions
// cannot drive the balance negative.
func (s *Service) Redeem(session *auth.Session, rewardID uint, ip string) (*models.UserReward, error) {
	if session == nil {
		return nil, auth.ErrNotAuthenticated
	}

	reward, err := s.rewards.GetByID(rewardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("load reward: %w", err)
	}

	debited, err := s.users.DeductPoints(session.UserID(), reward.PointsRequired)
	if err != nil {
		return nil, fmt.Errorf("debit points: %w", err)
	}
	if !debited {
		return nil, ErrInsufficientPoints
	}

	redemption := &models.UserReward{
		UserID:         session.UserID(),
		RewardID:       reward.ID,
		PointsRedeemed: reward.PointsRequired,
		RewardItem:     reward.Name,
	}

	if err := s.rewards.CreateRedemption(redemption); err != nil {
		// hand the debited points back, the redemption never existed
		if refundErr := s.users.AddPoints(session.UserID(), reward.PointsRequired); refundErr != nil {
			log.Errorf("[Rewards] failed to refund %d points to user %d: %v",
				reward.PointsRequired, session.UserID(), refundErr)
		}
		return nil, fmt.Errorf("persist redemption: %w", err)
	}

	if user, err := s.users.GetByID(session.UserID()); err == nil {
		session.User.Points = user.Points
	}

	s.audit.Record(strconv.FormatUint(uint64(session.UserID()), 10), audit.ActionRewardRedeemed,
		fmt.Sprintf("Redeemed %q for %d points", reward.Name, reward.PointsRequired), ip)

	return redemption, nil
}

// RedemptionsFor returns the session user's redemption history.
func (s *Service) RedemptionsFor(session *auth.Session) ([]models.UserReward, error) {
	if session == nil {
		return nil, auth.ErrNotAuthenticated
	}
	return s.rewards.GetRedemptionsByUserID(session.UserID())
}
