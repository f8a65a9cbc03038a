// Package frame builds the social preview documents served to frame-capable
// clients. The responder is stateless: it maps a button index onto one of
// two fixed cards and renders them as fc:frame meta documents.
package frame
