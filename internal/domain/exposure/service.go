package exposure

import (
	"log/slog"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

// Service exposes the environmental exposure risk engine.
type Service interface {
	HeatIndex(req HeatIndexRequest) (HeatIndexData, error)
	ExtremeHeat(req ExtremeHeatRequest) (ExtremeHeatWarning, error)
	Activity(req ActivityRequest) (RiskAssessment, error)
}

// Config wires runtime knobs for the exposure domain.
type Config struct {
	Policy Policy
}

type service struct {
	cfg    Config
	logger *slog.Logger
}

// NewService wires up the exposure domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		logger: logger.With("component", "exposure.service"),
	}
}

func (s *service) HeatIndex(req HeatIndexRequest) (HeatIndexData, error) {
	data, err := HeatIndex(req.TemperatureC, req.HumidityPct)
	if err != nil {
		return HeatIndexData{}, err
	}
	s.logger.Info("heat index computed", "temperature_c", req.TemperatureC, "humidity_pct", req.HumidityPct, "heat_index_c", data.HeatIndexC, "danger_level", data.DangerLevel)
	return data, nil
}

func (s *service) ExtremeHeat(req ExtremeHeatRequest) (ExtremeHeatWarning, error) {
	if err := checkInputs(uvBound(req.UVIndex)); err != nil {
		return ExtremeHeatWarning{}, err
	}
	if req.Hour != nil && (*req.Hour < 0 || *req.Hour > 23) {
		return ExtremeHeatWarning{}, apperrors.Wrap(apperrors.CodeInvalidInput, "hour must be between 0 and 23", nil)
	}
	heat, err := HeatIndex(req.TemperatureC, req.HumidityPct)
	if err != nil {
		return ExtremeHeatWarning{}, err
	}
	warning := CombineUVHeat(req.UVIndex, heat.HeatIndexC, req.Hour, s.cfg.Policy.UVHeat)
	s.logger.Info("extreme heat assessed", "uv_index", req.UVIndex, "heat_index_c", heat.HeatIndexC, "combined_risk", warning.CombinedRisk)
	return warning, nil
}

func (s *service) Activity(req ActivityRequest) (RiskAssessment, error) {
	reading := req.Reading
	if err := reading.validate(); err != nil {
		return RiskAssessment{}, err
	}
	aqi, err := NormalizeAQI(reading.AQI, req.AQIScale)
	if err != nil {
		return RiskAssessment{}, err
	}
	reading.AQI = aqi

	warning := req.HeatWarning
	if warning == "" {
		heat, err := HeatIndex(reading.TemperatureC, reading.HumidityPct)
		if err != nil {
			return RiskAssessment{}, err
		}
		warning = CombineUVHeat(reading.UVIndex, heat.HeatIndexC, nil, s.cfg.Policy.UVHeat).Severity
	}

	assessment, err := AssessActivity(reading, warning, req.Intensity, s.cfg.Policy.Activity)
	if err != nil {
		return RiskAssessment{}, err
	}
	s.logger.Info("activity risk assessed",
		"total_score", assessment.TotalScore,
		"combined_risk", assessment.CombinedRisk,
		"outdoor_safety", assessment.OutdoorSafety,
	)
	return assessment, nil
}
