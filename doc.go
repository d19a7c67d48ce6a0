// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package leddevices is a container for the 16 LED output port driver and
// its tooling.
//
// See ledport for the driver and ledview to look at the port without
// hardware.
package leddevices
