package errors

import "net/http"

var (
	ErrMissingAreaFields = New(
		"MISSING_AREA_FIELDS",
		"Name, description, coordinates and category are required",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrAreaNotFound = New(
		"AREA_NOT_FOUND",
		"Area not found",
		http.StatusNotFound,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrRemoteStoreError = New(
		"REMOTE_STORE_ERROR",
		"Remote document store operation failed",
		http.StatusInternalServerError,
	)

	ErrBlobStoreError = New(
		"BLOB_STORE_ERROR",
		"Blob upload failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrStreamError = New(
		"STREAM_ERROR",
		"Event stream operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
