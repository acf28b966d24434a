// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package conn defines core interfaces for protocols and connections.
//
// Is it now superseded by https://periph.io/x/conn/v3 (or later).
//
// See https://periph.io/news/2020/a_new_start/ for more details.
package conn
