package entities

import "regexp"

var (
	orderIDPattern     = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	accessTokenPattern = regexp.MustCompile(`(?i)^[0-9a-f]{64}$`)
)

// GuestOrderFilter описывает единственное правило гостевого доступа:
// совпадает id, совпадает токен, у заказа нет владельца.
type GuestOrderFilter struct {
	OrderID     string
	AccessToken string
}

func ValidOrderID(id string) bool {
	return orderIDPattern.MatchString(id)
}

func ValidAccessToken(token string) bool {
	return accessTokenPattern.MatchString(token)
}
