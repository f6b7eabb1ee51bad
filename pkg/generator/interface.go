// Package generator produces numbered datasets of labeled text images.
package generator

// LabelSource yields the text drawn on each image.
type LabelSource interface {
	NextLabel() string
}

// Progress is notified once per written image. *progressbar.ProgressBar
// satisfies it.
type Progress interface {
	Add(n int) error
}
