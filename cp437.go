package ansihtml

// cp437Glyphs maps every code page 437 byte to its HTML rendering. Printable
// ASCII is filled in by init; entries left empty have no rendering.
var cp437Glyphs = [256]string{
	0x00: " ",

	// Control range: smileys, card suits, arrows
	0x01: "&#x263a;",
	0x02: "&#x263b;",
	0x03: "&#x2665;",
	0x04: "&#x2666;",
	0x05: "&#x2663;",
	0x06: "&#x2660;",
	0x08: "&#x25d8;",
	0x0a: "&#x25d9;",
	0x0b: "&#x2642;",
	0x0c: "&#x2640;",
	0x10: "&#x25BA;",
	0x11: "&#x25C4;",
	0x12: "&#x2195;",
	0x13: "&#x203C;",
	0x14: "&#x00b6;",
	0x15: "&#x00a7;",
	0x16: "&#x25ac;",
	0x17: "&#x21A8;",
	0x18: "&#x2191;",
	0x19: "&#x2193;",
	0x1a: "&#x2192;",
	0x1b: "&#x2190;",
	0x1c: "&#x221F;",
	0x1d: "&#x2194;",
	0x1e: "&#x25B2;",
	0x1f: "&#x25BC;",

	// Accented Latin letters and currency
	0x80: "&#x00c7;",
	0x81: "&#x00fc;",
	0x82: "&#x00e9;",
	0x83: "&#x00e2;",
	0x84: "&#x00e4;",
	0x85: "&#x00e0;",
	0x86: "&#x00e5;",
	0x87: "&#x00e7;",
	0x88: "&#x00ea;",
	0x89: "&#x00eb;",
	0x8a: "&#x00e8;",
	0x8b: "&#x00ef;",
	0x8c: "&#x00ee;",
	0x8d: "&#x00ec;",
	0x8e: "&#x00c4;",
	0x8f: "&#x00c5;",
	0x90: "&#x00c9;",
	0x91: "&#x00e6;",
	0x92: "&#x00c6;",
	0x93: "&#x00f4;",
	0x94: "&#x00f6;",
	0x95: "&#x00f2;",
	0x96: "&#x00fb;",
	0x97: "&#x00f9;",
	0x98: "&#x00ff;",
	0x99: "&#x00d6;",
	0x9a: "&#x00dc;",
	0x9b: "&#x00a2;",
	0x9c: "&#x00a3;",
	0x9d: "&#x00a5;",
	0x9e: "&#x20a7;",
	0x9f: "&#x0192;",

	// Latin letters and punctuation
	0xa0: "&#x00e1;",
	0xa1: "&#x00ed;",
	0xa2: "&#x00f3;",
	0xa3: "&#x00fa;",
	0xa4: "&#x00f1;",
	0xa5: "&#x00d1;",
	0xa6: "&#x00aa;",
	0xa7: "&#x00ba;",
	0xa8: "&#x00bf;",
	0xa9: "&#x2310;",
	0xaa: "&#x00ac;",
	0xab: "&#x00bd;",
	0xac: "&#x00bc;",
	0xad: "&#x00a1;",
	0xae: "&#x00ab;",
	0xaf: "&#x00bb;",

	// Shades
	0xb0: "&#9617;",
	0xb1: "&#9618;",
	0xb2: "&#9619;",

	// Box drawing
	0xb3: "&#9474;",
	0xb4: "&#9508;",
	0xb5: "&#9569;",
	0xb6: "&#9570;",
	0xb7: "&#9558;",
	0xb8: "&#9557;",
	0xb9: "&#9571;",
	0xba: "&#9553;",
	0xbb: "&#9559;",
	0xbc: "&#9565;",
	0xbd: "&#9564;",
	0xbe: "&#9563;",
	0xbf: "&#9488;",
	0xc0: "&#9492;",
	0xc1: "&#9524;",
	0xc2: "&#9516;",
	0xc3: "&#9500;",
	0xc4: "&#9472;",
	0xc5: "&#9532;",
	0xc6: "&#9566;",
	0xc7: "&#9567;",
	0xc8: "&#9562;",
	0xc9: "&#9556;",
	0xca: "&#9577;",
	0xcb: "&#9574;",
	0xcc: "&#9568;",
	0xcd: "&#9552;",
	0xce: "&#9580;",
	0xcf: "&#9575;",
	0xd0: "&#9576;",
	0xd1: "&#9572;",
	0xd2: "&#9573;",
	0xd3: "&#9561;",
	0xd4: "&#9560;",
	0xd5: "&#9554;",
	0xd6: "&#9555;",
	0xd7: "&#9579;",
	0xd8: "&#9578;",
	0xd9: "&#9496;",
	0xda: "&#9484;",

	// Block elements
	0xdb: "&#9608;",
	0xdc: "&#9604;",
	0xdd: "&#9612;",
	0xde: "&#9616;",
	0xdf: "&#9600;",

	// Greek letters and math symbols
	0xe0: "&#x03b1;",
	0xe1: "&#x00df;",
	0xe2: "&#x0393;",
	0xe3: "&#x03c0;",
	0xe4: "&#x03a3;",
	0xe5: "&#x03c3;",
	0xe6: "&#x00b5;",
	0xe7: "&#x03c4;",
	0xe8: "&#x03a6;",
	0xe9: "&#x0398;",
	0xea: "&#x03a9;",
	0xeb: "&#x03b4;",
	0xec: "&#x221e;",
	0xed: "&#x03c6;",
	0xee: "&#x03b5;",
	0xef: "&#x2229;",
	0xf0: "&#x2261;",
	0xf1: "&#x00b1;",
	0xf2: "&#x2265;",
	0xf3: "&#x2264;",
	0xf4: "&#x2320;",
	0xf5: "&#x2321;",
	0xf6: "&#x00f7;",
	0xf7: "&#x2248;",
	0xf8: "&#x00b0;",
	0xf9: "&#x2219;",
	0xfa: "&#x00b7;",
	0xfb: "&#x221a;",
	0xfc: "&#x207F;",
	0xfd: "&#x20b2;",
	0xfe: "&#x25a0;",
	0xff: "&nbsp;",
}

func init() {
	for b := 0x20; b < 0x7f; b++ {
		cp437Glyphs[b] = string(rune(b))
	}
}
