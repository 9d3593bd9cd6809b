package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests         *prometheus.CounterVec
	CounterWorkoutsRecorded prometheus.Counter
	CounterWorkoutsRejected *prometheus.CounterVec
	CounterExerciseResults  prometheus.Counter

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager("fittrack", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fittrack", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "route", "status"})
	counterWorkoutsRecorded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_recorded",
		Help:      "The total number of stored workout logs",
	})
	counterWorkoutsRejected := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_rejected",
		Help:      "The total number of workout logs that were not stored",
	}, []string{"reason"})
	counterExerciseResults := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercise_results",
		Help:      "The total number of stored exercise results",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})

	histReqDuration := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			Name:      "request_duration_seconds",
			Help:      "Total duration of requests in seconds",
		},
		[]string{"route"},
	)

	return &Manager{
		CounterRequests:         counterRequests,
		CounterWorkoutsRecorded: counterWorkoutsRecorded,
		CounterWorkoutsRejected: counterWorkoutsRejected,
		CounterExerciseResults:  counterExerciseResults,
		GaugeRequests:           gaugeRequests,
		HistRequestDuration:     histReqDuration,
	}
}

// WorkoutRecorded and WorkoutRejected let the manager observe the workout
// logs service.
func (m *Manager) WorkoutRecorded(exercises int) {
	m.CounterWorkoutsRecorded.Inc()
	m.CounterExerciseResults.Add(float64(exercises))
}

func (m *Manager) WorkoutRejected(reason string) {
	m.CounterWorkoutsRejected.WithLabelValues(reason).Inc()
}
