package colour

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// MaxExtractCount is the largest number of colours an Extractor returns.
const MaxExtractCount = 256

// Extractor reduces a list of colours to a smaller representative set.
type Extractor interface {
	// Extract returns at most count colours representing colors.
	Extract(colors []Color, count int) ([]Color, error)
}

// KMeansExtractor reduces colours with k-means clustering in RGB space.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
// A nil rng uses the global random source.
func NewKMeansExtractor(rng *rand.Rand) *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		rng:           rng,
	}
}

// Extract clusters colors into count groups and returns the centroid of each,
// with channels rounded to whole numbers. When there are no more distinct
// colours than count, the distinct colours are returned unchanged.
func (e *KMeansExtractor) Extract(colors []Color, count int) ([]Color, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colours to extract from")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > MaxExtractCount {
		return nil, fmt.Errorf("colour count too large: %d (maximum: %d)", count, MaxExtractCount)
	}

	unique := Unique(colors)
	if count >= len(unique) {
		return unique, nil
	}

	centroids := e.kmeans(colors, count)
	for i, c := range centroids {
		centroids[i] = Color{math.Round(c[0]), math.Round(c[1]), math.Round(c[2])}
	}
	return centroids, nil
}

// distance is the Euclidean distance between two colours in RGB space.
func distance(a, b Color) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func (e *KMeansExtractor) kmeans(points []Color, k int) []Color {
	centroids := e.seedCentroids(points, k)
	assignments := make([]int, len(points))

	for range e.maxIterations {
		changed := 0
		for i, p := range points {
			nearest := nearestCentroid(p, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		newCentroids := e.recalculateCentroids(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement += distance(centroids[i], newCentroids[i])
		}
		centroids = newCentroids

		// Fewer than 1% reassigned, or centroids barely moved.
		if float64(changed)/float64(len(points)) < 0.01 || movement/float64(k) < e.convergence {
			break
		}
	}

	return centroids
}

// seedCentroids picks initial centroids with k-means++.
func (e *KMeansExtractor) seedCentroids(points []Color, k int) []Color {
	centroids := make([]Color, 0, k)
	centroids = append(centroids, points[e.intN(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		total := 0.0
		for i, p := range points {
			d := distance(p, centroids[nearestCentroid(p, centroids)])
			distances[i] = d * d
			total += distances[i]
		}

		if total == 0 {
			// Every point coincides with a centroid.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, Color{last[0] + 0.1, last[1] + 0.1, last[2] + 0.1})
			continue
		}

		target := e.float64() * total
		cumulative := 0.0
		next := len(points) - 1
		for i, d := range distances {
			cumulative += d
			if cumulative >= target && d > 0 {
				next = i
				break
			}
		}
		centroids = append(centroids, points[next])
	}

	return centroids
}

func nearestCentroid(p Color, centroids []Color) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, c := range centroids {
		if d := distance(p, c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func (e *KMeansExtractor) recalculateCentroids(points []Color, assignments []int, k int) []Color {
	sums := make([]Color, k)
	counts := make([]int, k)

	for i, p := range points {
		cluster := assignments[i]
		sums[cluster][0] += p[0]
		sums[cluster][1] += p[1]
		sums[cluster][2] += p[2]
		counts[cluster]++
	}

	centroids := make([]Color, k)
	for i := range k {
		if counts[i] == 0 {
			// Empty cluster, reseed from a random point.
			centroids[i] = points[e.intN(len(points))]
			continue
		}
		n := float64(counts[i])
		centroids[i] = Color{sums[i][0] / n, sums[i][1] / n, sums[i][2] / n}
	}
	return centroids
}

func (e *KMeansExtractor) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (e *KMeansExtractor) float64() float64 {
	if e.rng != nil {
		return e.rng.Float64()
	}
	return rand.Float64()
}
