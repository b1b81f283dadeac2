package sweep

import (
	"context"
	"math"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/motorsim/internal/alert"
	"github.com/san-kum/motorsim/internal/config"
	"github.com/san-kum/motorsim/internal/logging"
	"github.com/san-kum/motorsim/internal/motor"
)

type Sweep struct {
	param   string
	values  []float64
	workers int
}

// Point is the outcome of one parameter value. Err is set when the motor
// could not be built from the modified definition.
type Point struct {
	Value   float64
	Success bool
	Stats   motor.Stats
	Alerts  []alert.Alert
	Err     error
}

func New(param string, values []float64, workers int) *Sweep {
	if workers < 1 {
		workers = 1
	}
	return &Sweep{param: param, values: values, workers: workers}
}

// Run simulates base once per value. Every run owns a fresh Motor built
// from its own copy of the definition. Cancelling ctx stops runs in
// progress at their next step.
func (s *Sweep) Run(ctx context.Context, base motor.Definition) ([]Point, error) {
	probe := base.Clone()
	if err := Apply(&probe, s.param, 0); err != nil {
		return nil, err
	}

	logger := logging.FromContext(ctx)
	points := make([]Point, len(s.values))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				points[idx] = s.runPoint(ctx, base, s.values[idx])
				logger.WithFields(log.Fields{
					"param":   s.param,
					"value":   s.values[idx],
					"success": points[idx].Success,
				}).Debug("sweep point done")
			}
		}()
	}

feed:
	for i := range s.values {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return points, err
	}
	return points, nil
}

func (s *Sweep) runPoint(ctx context.Context, base motor.Definition, value float64) Point {
	p := Point{Value: value}
	def := base.Clone()
	if err := Apply(&def, s.param, value); err != nil {
		p.Err = err
		return p
	}
	if err := config.ValidateBounds(def.Config); err != nil {
		p.Err = err
		return p
	}
	m, err := motor.FromDefinition(def)
	if err != nil {
		p.Err = err
		return p
	}

	res := m.Simulate(func(float64) bool {
		return ctx.Err() != nil
	})
	p.Success = res.Success
	p.Stats = res.Stats()
	p.Alerts = res.Alerts
	return p
}

// Best picks the successful point with the lowest (or highest) value of
// metric, a key of motor.Stats.Values.
func Best(points []Point, metric string, maximize bool) (Point, bool) {
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}

	var bestPoint Point
	found := false
	for _, p := range points {
		if !p.Success {
			continue
		}
		val, ok := p.Stats.Values()[metric]
		if !ok {
			return Point{}, false
		}
		if (maximize && val > best) || (!maximize && val < best) {
			best = val
			bestPoint = p
			found = true
		}
	}
	return bestPoint, found
}
