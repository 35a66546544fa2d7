// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Keys of the default tree understood by [GetServiceConfig]. Other keys are
// resolved like any other but ignored when building a [ServiceConfig].
const (
	keyColor          = "color"
	keyName           = "name"
	keyEnvironment    = "environment"
	keyAuthEndpoint   = "authEndpoint"
	keyHTTPAddress    = "httpAddress"
	keyGRPCAddress    = "grpcAddress"
	keyRequestTimeout = "requestTimeout"
	keyAuthTimeout    = "authTimeout"
)

// fromTree maps a resolved tree onto a ServiceConfig. Environment overrides
// arrive as strings, so durations are parsed here explicitly.
func fromTree(tree Tree) (*ServiceConfig, error) {
	requestTimeout, err := durationValue(tree[keyRequestTimeout])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDuration, keyRequestTimeout, err)
	}

	authTimeout, err := durationValue(tree[keyAuthTimeout])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDuration, keyAuthTimeout, err)
	}

	return &ServiceConfig{
		Color:        stringValue(tree[keyColor]),
		Name:         stringValue(tree[keyName]),
		Environment:  stringValue(tree[keyEnvironment]),
		AuthEndpoint: stringValue(tree[keyAuthEndpoint]),
		Server: Server{
			HTTPAddress:    stringValue(tree[keyHTTPAddress]),
			GRPCAddress:    stringValue(tree[keyGRPCAddress]),
			RequestTimeout: requestTimeout,
			AuthTimeout:    authTimeout,
		},
	}, nil
}

func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// durationValue reads a duration key. Strings use [time.ParseDuration]
// syntax; plain numbers, bare or in a string, count seconds.
func durationValue(v any) (time.Duration, error) {
	switch value := v.(type) {
	case nil:
		return 0, nil
	case time.Duration:
		return value, nil
	case string:
		if value == "" {
			return 0, nil
		}
		if seconds, err := strconv.ParseFloat(value, 64); err == nil {
			return secondsToDuration(seconds), nil
		}
		return time.ParseDuration(value)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return time.Duration(rv.Int()) * time.Second, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return time.Duration(rv.Uint()) * time.Second, nil
	case reflect.Float32, reflect.Float64:
		return secondsToDuration(rv.Float()), nil
	default:
		return 0, fmt.Errorf("unsupported value %v of type %T", v, v)
	}
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
