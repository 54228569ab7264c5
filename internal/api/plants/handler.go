package plants

import "plantcompareapi/internal/api"

type Handler struct {
	*api.Handler
}
