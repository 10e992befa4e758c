package store

// KeyRegisteredUsers holds the list of all registered identities with their
// password hashes. It is the only key not scoped to one identity.
const KeyRegisteredUsers = "registered-users"

// CurrentIdentityKey holds the logged-in identity for a user; present only
// while a session is active.
func CurrentIdentityKey(identityID string) string {
	return "current-identity:" + identityID
}

// CartKey holds the ordered list of cart lines for a customer.
func CartKey(identityID string) string {
	return "cart:" + identityID
}

// OrderLogKey holds the append-only list of a customer's orders.
func OrderLogKey(identityID string) string {
	return "order-log:" + identityID
}

// LastOrderKey holds the most recently placed order, staged for the
// confirmation view.
func LastOrderKey(identityID string) string {
	return "last-order:" + identityID
}

// CustomerNameKey and SellerNameKey hold the display name a user chose on
// their dashboard.
func CustomerNameKey(identityID string) string {
	return "customer-name:" + identityID
}

func SellerNameKey(identityID string) string {
	return "seller-name:" + identityID
}

// SellerProductsKey holds the append-only list of products a seller listed.
func SellerProductsKey(identityID string) string {
	return "seller-products:" + identityID
}

// ListingDraftKey holds a seller's in-progress listing flow, if any.
func ListingDraftKey(identityID string) string {
	return "listing-draft:" + identityID
}
