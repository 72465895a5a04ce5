package booking

type CreatePaymentIntentReq struct {
	Price any `json:"price"`
}

type CreatePaymentIntentResp struct {
	ClientSecret string `json:"clientSecret,omitempty"`
	Message      string `json:"message,omitempty"`
}
