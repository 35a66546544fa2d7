// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase_TableTest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"root", "root"},
		{"authEndpoint", "auth_endpoint"},
		{"AuthEndpoint", "auth_endpoint"},
		{"HTTPAddress", "http_address"},
		{"XMLHttpRequest", "xml_http_request"},
		{"grpcAddress", "grpc_address"},
		{"oauth2Url", "oauth_2_url"},
		{"already_snake", "already_snake"},
		{"kebab-case-key", "kebab_case_key"},
		{"  spaced key ", "spaced_key"},
		{"ID", "id"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, snakeCase(tt.in))
		})
	}
}
