package consultation

import (
	"fmt"

	"github.com/WailSalutem-Health-Care/clinic-office-service/internal/store"
)

var ErrNotFound = fmt.Errorf("consultation %w", store.ErrNotFound)
