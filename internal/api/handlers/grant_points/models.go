package grant_points

// GrantPointsRequest HTTP request model
type GrantPointsRequest struct {
	UserID      int64  `json:"userId"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// GrantPointsResponse HTTP response model
type GrantPointsResponse struct {
	TransactionID int64 `json:"transactionId"`
	UserID        int64 `json:"userId"`
	Amount        int64 `json:"amount"`
}
