// Package calctypes defines the core interfaces and data types shared across calchub.
// This file contains the service and command contracts that the shell, the command
// registry and the service registry are built on.
package calctypes

// Service defines the interface for calchub services that provide specific functionality.
// Services are initialized at startup and can be accessed by commands during execution.
type Service interface {
	Name() string
	Initialize() error
}

// Command defines the interface that all calchub commands must implement.
// Commands handle user input and should only interact with services.
type Command interface {
	Name() string
	ParseMode() ParseMode
	Description() string
	Usage() string
	HelpInfo() HelpInfo
	Execute(args map[string]string, input string) error
}

// ServiceRegistry manages the registration and retrieval of services.
type ServiceRegistry interface {
	GetService(name string) (Service, error)
	RegisterService(service Service) error
}

// TestModeProvider reports whether deterministic test behaviour is enabled.
type TestModeProvider interface {
	IsTestMode() bool
}
