package api

import (
	"net/http"
)

type oauth2Opt struct {
	token string
}

func OAuth2(prefix, token string) *oauth2Opt {
	return &oauth2Opt{token: prefix + " " + token}
}

func (opt *oauth2Opt) Do(client defaultClient, req *http.Request) {
	req.Header.Set("Authorization", opt.token)
}

type basicAuthOpt struct {
	username string
	password string
}

func BasicAuth(username, password string) *basicAuthOpt {
	return &basicAuthOpt{username: username, password: password}
}

func (opt *basicAuthOpt) Do(client defaultClient, req *http.Request) {
	req.SetBasicAuth(opt.username, opt.password)
}
