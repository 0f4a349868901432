package analysis

import "crypto-sentiment-bot/internal/domain"

// Predictor maps a sentiment score to an expected move with a fixed linear fit.
type Predictor struct {
	slope     float64
	intercept float64
	threshold float64
}

func NewPredictor(p Params) *Predictor {
	return &Predictor{slope: p.Slope, intercept: p.Intercept, threshold: p.DirectionThreshold}
}

// Predict is deterministic: the same sentiment always yields the same prediction.
func (p *Predictor) Predict(sentiment float64) domain.Prediction {
	magnitude := p.intercept + p.slope*sentiment
	return domain.Prediction{
		Direction: p.direction(magnitude),
		Magnitude: magnitude,
	}
}

// boundaries are exclusive: exactly +/-threshold is flat
func (p *Predictor) direction(magnitude float64) domain.Direction {
	switch {
	case magnitude > p.threshold:
		return domain.DirectionUp
	case magnitude < -p.threshold:
		return domain.DirectionDown
	default:
		return domain.DirectionFlat
	}
}

// SideFor converts a direction to the side a plan should be built for.
func SideFor(d domain.Direction) domain.Side {
	switch d {
	case domain.DirectionUp:
		return domain.SideLong
	case domain.DirectionDown:
		return domain.SideShort
	default:
		return domain.SideHold
	}
}
