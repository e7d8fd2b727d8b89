package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// metaCodeKey carries our code through gRPC details so FromGRPCError can restore it
const metaCodeKey = "code"

// ToGRPCError converts an error to a gRPC status error.
// Metadata travels as a google.protobuf.Struct detail.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)

	details := map[string]interface{}{metaCodeKey: string(customErr.Code)}
	for k, v := range customErr.Meta {
		// values structpb cannot represent are dropped from the wire
		if _, valErr := structpb.NewValue(v); valErr == nil {
			details[k] = v
		}
	}
	if pb, convErr := structpb.NewStruct(details); convErr == nil {
		if withDetails, detailErr := st.WithDetails(pb); detailErr == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		pb, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		meta := pb.AsMap()
		if code, ok := meta[metaCodeKey].(string); ok {
			customErr.Code = Code(code)
			delete(meta, metaCodeKey)
		}
		if len(meta) > 0 {
			customErr.Meta = meta
		}
		break
	}

	return customErr
}
