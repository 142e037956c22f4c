package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
)

var (
	errMarshalOutput = errors.New("Marshal JSON output fail.")

	// ErrInvalidParam reject a request missing or mangling a param.
	ErrInvalidParam = errors.New("invalid param")
)

// Response is the envelope every API answer goes out in.
type Response struct {
	Code int         `json:"httpstatus"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

func (r *Response) Write(w http.ResponseWriter) {
	if r.Code == 0 {
		r.Code = http.StatusOK
	}
	body, err := json.Marshal(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(errMarshalOutput.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.Code)
	w.Write(body)
}

func WriteResponse(w http.ResponseWriter, code int, msg string, data interface{}) {
	(&Response{Code: code, Msg: msg, Data: data}).Write(w)
}

// Return 200 http status with a message.
func ReturnOK(w http.ResponseWriter, msg string) {
	WriteResponse(w, http.StatusOK, msg, nil)
}

// Return 400 http status.
func ReturnBadRequest(w http.ResponseWriter, err error) {
	WriteResponse(w, http.StatusBadRequest, err.Error(), nil)
}

// Return 401 http status.
func ReturnUnauthorized(w http.ResponseWriter, msg string) {
	WriteResponse(w, http.StatusUnauthorized, msg, nil)
}

// Return 403 http status.
func ReturnForbidden(w http.ResponseWriter, msg string) {
	WriteResponse(w, http.StatusForbidden, msg, nil)
}

// Return 404 http status.
func ReturnNotFound(w http.ResponseWriter, msg string) {
	WriteResponse(w, http.StatusNotFound, msg, nil)
}

// Return 500 http status.
func ReturnServerError(w http.ResponseWriter, err error) {
	WriteResponse(w, http.StatusInternalServerError, err.Error(), nil)
}

func ReturnJson(w http.ResponseWriter, httpStatus int, returnJson interface{}) {
	if httpStatus == 0 {
		httpStatus = http.StatusOK
	}
	(&Response{Code: httpStatus, Data: returnJson}).Write(w)
}
