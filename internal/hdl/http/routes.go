package http

func (h *Handler) RegisterRoutes() {
	h.RegisterAuthRoutes()
	h.RegisterUserRoutes()
	h.RegisterDeviceRoutes()
	h.RegisterTelemetryRoutes()
	h.RegisterLDRRoutes()
}
