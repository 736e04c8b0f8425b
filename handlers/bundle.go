package handlers

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Auth        *AuthHandler
	Sessions    *SessionHandler
	Consumption *ConsumptionHandler
	Checkout    *CheckoutHandler
	Products    *ProductHandler
	Coupons     *CouponHandler
	Drawer      *DrawerHandler
	Venue       *VenueHandler
	Notices     *NoticeHandler
	Reports     *ReportsHandler
}
