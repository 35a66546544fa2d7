// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-service-common/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// authorizationKey is the metadata key carrying the bearer credential.
// gRPC lower-cases metadata keys.
const authorizationKey = "authorization"

// UnaryAuthInterceptor returns a [grpc.UnaryServerInterceptor] that runs the
// auth guard chain on the "authorization" metadata value. On success the
// bearer token is available to the handler through [utils.TokenFromContext].
func (h *Handler) UnaryAuthInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if h.excludedMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		authCtx, err := h.authenticate(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}

		return handler(authCtx, req)
	}
}

// StreamAuthInterceptor is the streaming counterpart of
// [Handler.UnaryAuthInterceptor].
func (h *Handler) StreamAuthInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if h.excludedMethods[info.FullMethod] {
			return handler(srv, ss)
		}

		authCtx, err := h.authenticate(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}

		return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: authCtx})
	}
}

// authenticate runs the guard chain and returns the context enriched with
// the token, or a gRPC status error.
func (h *Handler) authenticate(ctx context.Context, method string) (context.Context, error) {
	header := authorizationFromMetadata(ctx)

	if failed := h.services.AuthService.Authenticate(ctx, header); failed != nil {
		h.emitter.Report(ctx, failed)
		h.logger.Debug().
			Str("method", method).
			Int("code", failed.Code).
			Msg("gRPC call rejected")
		return ctx, toStatus(failed)
	}

	token, _ := utils.ParseBearerToken(header)
	return utils.WithToken(ctx, token), nil
}

// authorizationFromMetadata returns the first "authorization" metadata
// value, or "" if none was sent.
func authorizationFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}

	values := md.Get(authorizationKey)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

// wrappedServerStream wraps grpc.ServerStream with an authenticated context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

// Context returns the authenticated context.
func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
