// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package polydd

import "github.com/sirupsen/logrus"

// pkglog is the package-wide logger used for GC, resize, and apply-cache
// tracing. It defaults to logrus's standard logger; callers embedding this
// package in a larger service can redirect it with SetLogger.
var pkglog logrus.FieldLogger = logrus.StandardLogger()

// SetLogger overrides the logger used for internal tracing (GC, resize,
// cache statistics). Passing nil restores the default standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		pkglog = logrus.StandardLogger()
		return
	}
	pkglog = l
}

func logger() logrus.FieldLogger {
	return pkglog
}
