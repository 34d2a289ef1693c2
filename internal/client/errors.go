package client

import "errors"

var ErrServicesNotProvided = errors.New("client services are not provided")
