package services

import "fitclub_backend/internal/email"

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService       AuthService
	UserService       UserService
	TrainerService    TrainerService
	MembershipService MembershipService
	ShopService       ShopService
	OrderService      OrderService
	PortalService     PortalService
	ContactService    ContactService
	AdminService      AdminService
	EmailProvider     email.Provider
}
