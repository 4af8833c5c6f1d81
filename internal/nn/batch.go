package nn

import (
	"fmt"

	"github.com/cyron-ml/cyron/internal/parallel"
)

// ForwardBatch runs Forward on every input using a pool of workers.
//
// Results are returned in input order. If any input fails, the first error
// observed is returned, wrapped with the index of the failing input, and no
// results are returned. workers must be at least 1.
func (n *Network) ForwardBatch(inputs [][]float64, workers int) ([][]float64, error) {
	results := make([][]float64, len(inputs))

	err := parallel.Run(len(inputs), parallel.Config{NumWorkers: workers}, func(i int) error {
		out, err := n.Forward(inputs[i])
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		results[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}
