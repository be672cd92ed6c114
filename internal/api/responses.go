package api

// Success is the envelope every successful endpoint returns:
// {"status":"success","data":...}
type Success struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// Error is the uniform failure envelope. Detail carries the underlying
// store error message when one exists.
type Error struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"something went wrong"`
	Detail  string `json:"error,omitempty"`
}

// RouteNotFound is the 404 body for unmatched paths. It lists the routes
// the server actually serves.
type RouteNotFound struct {
	Status          string   `json:"status" example:"error"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"availableRoutes"`
}

// Message is the data-less success envelope, e.g. after a delete.
type Message struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message"`
}

type Health struct {
	Status string `json:"status" example:"ok"`
}

func OK(data interface{}) Success {
	return Success{Status: "success", Data: data}
}

func Done(message string) Message {
	return Message{Status: "success", Message: message}
}

func Fail(message string) Error {
	return Error{Status: "error", Message: message}
}

func FailWith(message string, err error) Error {
	e := Error{Status: "error", Message: message}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}
