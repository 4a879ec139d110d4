package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	TrainerHandler    *TrainerHandler
	MembershipHandler *MembershipHandler
	ShopHandler       *ShopHandler
	OrderHandler      *OrderHandler
	PortalHandler     *PortalHandler
	ContactHandler    *ContactHandler
	AdminHandler      *AdminHandler
}
