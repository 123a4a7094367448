package patient

import (
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

// ErrNotFound is returned for operations on an unknown patient id.
var ErrNotFound = fmt.Errorf("patient %w", store.ErrNotFound)
