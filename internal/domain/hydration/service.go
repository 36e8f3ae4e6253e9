package hydration

import "log/slog"

// Service exposes the hydration requirement calculator.
type Service interface {
	Recommend(req Request) (Recommendation, error)
}

type service struct {
	cfg    Config
	logger *slog.Logger
}

// NewService wires up the hydration domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "hydration.service"),
	}
}

func (s *service) Recommend(req Request) (Recommendation, error) {
	rec, err := Calculate(req, s.cfg.Policy)
	if err != nil {
		s.logger.Warn("hydration request rejected", "error", err)
		return Recommendation{}, err
	}
	s.logger.Info("hydration computed",
		"daily_liters", rec.DailyIntakeLiters,
		"risk", rec.DehydrationRisk,
		"risk_score", rec.RiskScore,
	)
	return rec, nil
}
