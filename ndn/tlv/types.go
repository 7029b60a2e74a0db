/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tlv

// TLV types for names and name components.
const (
	Name = 0x07

	ImplicitSha256DigestComponent   = 0x01
	ParametersSha256DigestComponent = 0x02
	GenericNameComponent            = 0x08
	KeywordNameComponent            = 0x20
	SegmentNameComponent            = 0x32
	ByteOffsetNameComponent         = 0x34
	VersionNameComponent            = 0x36
	TimestampNameComponent          = 0x38
	SequenceNumNameComponent        = 0x3A
)
