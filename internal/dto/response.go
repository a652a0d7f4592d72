package dto

// CommonResponse is the envelope every endpoint returns, success or failure.
// Result is omitted entirely when there is no payload.
type CommonResponse struct {
	Status Status      `json:"status"`
	Result interface{} `json:"result,omitempty"`
}

type Status struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Success(result interface{}, message string) CommonResponse {
	return CommonResponse{Status: Status{Code: 200, Message: message}, Result: result}
}

func SuccessMessage(message string) CommonResponse {
	return CommonResponse{Status: Status{Code: 200, Message: message}}
}

func Error(code int, message string) CommonResponse {
	return CommonResponse{Status: Status{Code: code, Message: message}}
}
