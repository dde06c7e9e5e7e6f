package maintenance

import "time"

// runTimeout bounds a single maintenance run.
const runTimeout = time.Minute
