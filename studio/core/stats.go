package core

import (
	"fmt"
	"sync"
	"time"
)

// Stats is a snapshot of document contents, logged after every build.
type Stats struct {
	Objects   int
	Meshes    int
	Materials int
	Actions   int
	Channels  int
	Keyframes int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d objects, %d meshes, %d materials, %d actions, %d channels, %d keyframes",
		s.Objects, s.Meshes, s.Materials, s.Actions, s.Channels, s.Keyframes)
}

const buildAvgCount = 8

type metricsState struct {
	mu        sync.Mutex
	durations [buildAvgCount]time.Duration
	counter   int
	builds    int
}

var metrics metricsState

// MetricsRecordBuild folds one build duration into the rolling average.
// Watch mode rebuilds many times per session.
func MetricsRecordBuild(d time.Duration) {
	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	metrics.durations[metrics.counter] = d
	metrics.counter = (metrics.counter + 1) % buildAvgCount
	metrics.builds++
}

func MetricsBuilds() int {
	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	return metrics.builds
}

// MetricsBuildTime reports the average duration of the recorded builds,
// at most the last eight.
func MetricsBuildTime() time.Duration {
	metrics.mu.Lock()
	defer metrics.mu.Unlock()
	n := metrics.builds
	if n == 0 {
		return 0
	}
	if n > buildAvgCount {
		n = buildAvgCount
	}
	var sum time.Duration
	for i := 0; i < n; i++ {
		sum += metrics.durations[i]
	}
	return sum / time.Duration(n)
}
