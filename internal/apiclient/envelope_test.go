package apiclient_test

import (
	"errors"
	"testing"

	"shramikadmin/internal/apiclient"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func resp(body string) *apiclient.Response {
	return &apiclient.Response{StatusCode: 200, Body: []byte(body)}
}

func TestUnwrap_Field(t *testing.T) {
	got, err := apiclient.Unwrap[item](resp(`{"success":true,"data":{"item":{"id":"1","name":"a"}}}`), "item")
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if got != (item{ID: "1", Name: "a"}) {
		t.Fatalf("got %+v", got)
	}
}

func TestUnwrap_List(t *testing.T) {
	got, err := apiclient.Unwrap[[]item](resp(`{"data":{"items":[{"id":"1"},{"id":"2"}]}}`), "items")
	if err != nil || len(got) != 2 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestUnwrap_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty body":    ``,
		"not json":      `<html>`,
		"no data":       `{"success":true}`,
		"null data":     `{"data":null}`,
		"data array":    `{"data":[1,2]}`,
		"missing field": `{"data":{"other":{}}}`,
		"null field":    `{"data":{"item":null}}`,
		"wrong type":    `{"data":{"item":"text"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := apiclient.Unwrap[item](resp(body), "item")
			if !errors.Is(err, apiclient.ErrMalformedResponse) {
				t.Fatalf("want ErrMalformedResponse, got %v", err)
			}
		})
	}
}

func TestUnwrapData(t *testing.T) {
	type sheet struct {
		Items []item `json:"items"`
		Count int    `json:"count"`
	}
	got, err := apiclient.UnwrapData[sheet](resp(`{"data":{"count":3}}`))
	if err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	if got.Count != 3 || got.Items != nil {
		t.Fatalf("got %+v", got)
	}

	if _, err := apiclient.UnwrapData[sheet](resp(`{"message":"ok"}`)); !errors.Is(err, apiclient.ErrMalformedResponse) {
		t.Fatalf("want ErrMalformedResponse, got %v", err)
	}
}
