// Package facehalv1 declares the backend face HAL contract: the operations the
// backend service serves and the event callback it invokes. Shapes are the
// backend's own: int32 result codes, signed identifiers, int32 timeouts.
package facehalv1
