package service

import (
	"sync"

	"github.com/rs/zerolog"
)

// AdminService owns the public-registration flag. The flag is explicit state
// behind a getter and setter rather than ambient configuration, so the toggle
// can be flipped at runtime by an HR admin and observed by the auth service.
type AdminService struct {
	mu                  sync.RWMutex
	registrationEnabled bool
	log                 zerolog.Logger
}

func NewAdminService(registrationEnabled bool, log zerolog.Logger) *AdminService {
	return &AdminService{registrationEnabled: registrationEnabled, log: log}
}

func (s *AdminService) RegistrationEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registrationEnabled
}

func (s *AdminService) SetRegistrationEnabled(enabled bool) {
	s.mu.Lock()
	s.registrationEnabled = enabled
	s.mu.Unlock()
	s.log.Info().Bool("enabled", enabled).Msg("public registration toggled")
}
