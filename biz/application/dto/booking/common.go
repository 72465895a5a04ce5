package booking

type UpdateResp struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type InsertResp struct {
	InsertedId string `json:"insertedId,omitempty"`
	Message    string `json:"message,omitempty"`
}

type DeleteResp struct {
	DeletedCount int64 `json:"deletedCount"`
}
