package utils

import (
	"bytes"
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"
)

var (
	Form = "form"
	Raw  = "raw"
	JSON = "json"
)

type HttpQuery struct {
	Timeout  int
	Method   string
	Url      string
	BodyType string
	Body     []byte
	Result   HttpResult
}

type HttpResult struct {
	Status int
	Body   []byte
}

func (query *HttpQuery) DoQuery() error {
	url, err := url.Parse(query.Url)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: time.Duration(query.Timeout) * time.Second}
	req, err := http.NewRequest(query.Method, url.String(), bytes.NewReader(query.Body))
	if err != nil {
		return err
	}

	if query.Method != http.MethodGet {
		contentType := ""
		switch query.BodyType {
		case Form:
			contentType = "application/x-www-form-urlencoded"
		case JSON:
			contentType = "application/json"
		case Raw:
		default:
			return errors.New("unknown request body type")
		}
		req.Header.Set("Content-Type", contentType)
	}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	query.Result.Status = res.StatusCode
	query.Result.Body, err = ioutil.ReadAll(res.Body)
	if err != nil {
		return errors.New("error in read response body")
	}
	return nil
}
