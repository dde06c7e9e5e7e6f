package sqlite

import (
	"fmt"

	"github.com/skillcoder/pingmon/internal/logic/monitor"
)

// storageError marks err as a storage failure of op.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, monitor.ErrStorage, err)
}
