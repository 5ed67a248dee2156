package deps

import (
	"time"

	"github.com/pariwisata-jepara/backend/internal/dashboard"
	"github.com/pariwisata-jepara/backend/internal/logger"
	"github.com/pariwisata-jepara/backend/internal/repo"
)

// Deps carries everything handlers need. A single value is passed to
// every route registrar.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Destinations *repo.Destinations
	Reports      *repo.Reports
	Events       *repo.Events
	Dashboard    *dashboard.Aggregator
}
