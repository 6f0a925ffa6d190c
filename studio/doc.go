// Package studio implements the image-generation workspace built on top of
// the provider layer: an on-disk library of input and output images, a prompt
// template store, and the Gemini-backed generation pipeline that ties them
// together. All state lives under a single base directory so a workspace can
// be relocated or wiped as a unit.
package studio
