package appointment

import (
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

var ErrNotFound = fmt.Errorf("appointment %w", store.ErrNotFound)
