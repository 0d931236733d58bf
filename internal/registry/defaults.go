package registry

// DefaultSynonyms is the built-in variable dictionary used when no
// configuration file supplies one. Keys are canonical names; values are the
// alternate spellings accepted for them.
func DefaultSynonyms() map[string][]string {
	return map[string][]string{
		"user_type":       {"UserType", "user_type", "type_of_user", "User_Type", "uset_type"},
		"account_status":  {"ACCT_STATUS", "accountStatus", "status_of_account", "Acct_Status", "account_status"},
		"customer_tier":   {"Customer_Tier", "customerTier", "tier_of_customer", "customer_tier"},
		"purchase_amount": {"purchaseAmount", "amount_of_purchase", "purchase_amount"},
		"user_id":         {"user_ID", "UserId", "userId", "user_id", "ID_of_user"},
		"current_time":    {"current_TIME", "CurrentTime", "currentTime", "current_time", "time_now"},
		"user_role":       {"User_Role", "user_role", "role_of_user", "userRole"},
		"item_count":      {"itemCount", "Item_Count", "count_of_items", "item_count"},
		"item_weight":     {"item_weight", "ItemWeight", "weight_of_item", "itemWeight"},
		"customer_rating": {"customer_rating", "CustomerRating", "rating_of_customer", "customerRating"},
		"user_status":     {"user_status", "UserStatus", "status_of_user", "userStatus"},
		"is_user_admin":   {"is_User_Admin", "is_user_admin", "isAdmin", "IsUserAdmin"},
	}
}
