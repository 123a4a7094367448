package doctor

import (
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

var ErrNotFound = fmt.Errorf("doctor %w", store.ErrNotFound)
