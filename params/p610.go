package params

import (
	"github.com/jedisct1/go-sidh/field"
	"github.com/jedisct1/go-sidh/isogeny"
)

// p610: p = 2^305 * 3^192 - 1
var p610Prime = field.Prime{
	Words: 10,
	P: field.Fp{
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
		0x6E01FFFFFFFFFFFF, 0xB1784DE8AA5AB02E, 0x9AE7BF45048FF9AB, 0xB255B2FA10C4252A,
		0x819010C251E7D88C, 0x000000027BF6A768,
	},
	// 2p
	P2: field.Fp{
		0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
		0xDC03FFFFFFFFFFFF, 0x62F09BD154B5605C, 0x35CF7E8A091FF357, 0x64AB65F421884A55,
		0x03202184A3CFB119, 0x00000004F7ED4ED1,
	},
	// p+1
	P1: field.Fp{
		0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		0x6E02000000000000, 0xB1784DE8AA5AB02E, 0x9AE7BF45048FF9AB, 0xB255B2FA10C4252A,
		0x819010C251E7D88C, 0x000000027BF6A768,
	},
	// R^2 = (2^640)^2 mod p
	R2: field.Fp{
		0xE75F5D201A197727, 0xE0B85963B627392E, 0x6BC1707818DE493D, 0xDC7F419940D1A0C5,
		0x7358030979EDE54A, 0x84F4BEBDEED75A5C, 0x7ECCA66E13427B47, 0xC5BB4E65280080B3,
		0x7019950F516DA19A, 0x000000008E290FF3,
	},
	// 1*R mod p
	One: field.Fp{
		0x00000000670CC8E6, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		0x9A34000000000000, 0x4D99C2BD28717A3F, 0x0A4A1839A323D41C, 0xD2B62215D06AD1E2,
		0x1369026E862CAF3D, 0x000000010894E964,
	},
	// 1/2 * R mod p
	Half: field.Fp{
		0x0000000033866473, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		0xCD1A000000000000, 0x26CCE15E9438BD1F, 0x05250C1CD191EA0E, 0xE95B110AE83568F1,
		0x09B481374316579E, 0x00000000844A74B2,
	},
	// Sliding window chain for x^((p-3)/4)
	Chain: field.Chain{
		Init: 9,
		Pow: []uint8{
			5, 4, 5, 6, 4, 6, 11, 8, 6, 8, 6, 3, 7, 3, 8, 4,
			6, 7, 6, 7, 4, 5, 6, 4, 8, 5, 6, 6, 4, 6, 6, 3,
			6, 9, 8, 4, 6, 6, 3, 8, 1, 9, 5, 6, 6, 6, 6, 1,
			11, 7, 1, 13, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 3,
		},
		Mul: []uint8{
			13, 7, 6, 9, 5, 8, 12, 0, 1, 4, 8, 3, 15, 1, 8, 4,
			12, 10, 13, 11, 6, 0, 1, 0, 4, 4, 10, 6, 3, 7, 15, 2,
			2, 4, 15, 7, 6, 11, 1, 11, 0, 9, 7, 8, 10, 5, 10, 0,
			11, 13, 0, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 3,
		},
	},
}

// 6*R mod p
var p610Six = field.Fp{
	0x000000026A4CB566, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
	0xC134000000000000, 0x6EA9F49D9DF37D20, 0x07ED12CFC9B70552, 0x8B99668EC0F8A0F7,
	0x7155ED12813C6A59, 0x000000013B902987,
}

func init() {
	register(&p610Prime, &Params{
		ID:   P610,
		Name: "p610",
		InitCurve: isogeny.Curve{
			A: field.Fp2{A: p610Six},
			C: field.Fp2{A: p610Prime.One},
		},
		A: Domain{
			// The x-coordinate of PA
			AffineP: field.Fp2{
				A: field.Fp{
					0x5019EC96A75AC57A, 0x8AEA0E717712C6F1, 0x03C067C819D29E5E, 0x59F454425FE307D9,
					0x6D29215D9AD5E6D4, 0xD8C5A27CDC9DD34A, 0x972DC274DAB435B3, 0x82A597C70A80E10F,
					0x48175986EFED547F, 0x00000000671A3592,
				},
				B: field.Fp{
					0xE4BA9CC3EEEC53F4, 0xBD34E4FEDB0132D3, 0x1B7125C87BEE960C, 0x25D615BF3CFAA355,
					0xFC8EC20DC367D66A, 0xB44F3FD1CC73289C, 0xD84BF51195C2E012, 0x38D7C756EB370F48,
					0xBBC236249F94F72A, 0x000000013020CC63,
				},
			},
			// The x-coordinate of QA
			AffineQ: field.Fp2{
				A: field.Fp{
					0x1D7C945D3DBCC38C, 0x9A5F7C12CA8BA5B9, 0x1E8F87985B01CBE3, 0xD2CABF82F5BC5235,
					0x3BDE474ECCA9FAA2, 0xB98CD975DF9FB0A8, 0x444E4464B9C67790, 0xCB2E888565CE6AD9,
					0xDB64FFE2A1C350E2, 0x00000001D7532756,
				},
				B: field.Fp{
					0x1E8B3AA2382C9079, 0x28CB31E08A943C00, 0xE04D02266E8A63E1, 0x84A2D260214EF65F,
					0xD5933DA25018E226, 0xBC8BF038928C4BA9, 0x91E9D0CB7EAF58A9, 0x04A4627B75E008E1,
					0x58CEF27583E50C2E, 0x00000002170DDF44,
				},
			},
			// The x-coordinate of RA = PA-QA
			AffineR: field.Fp2{
				A: field.Fp{
					0x261DD0782CEC958D, 0xC25B3AE64BBC0311, 0x9F21B8A8981B15FE, 0xA3C0B52CD5FFC45B,
					0x5D2E65A016702C6A, 0x8C5586CA98722EDE, 0x61490A967A6B4B1A, 0xFA64E30231F719AF,
					0x9CEAB8B6301BB2DF, 0x00000000CF5AEA7D,
				},
				B: field.Fp{
					0xB980435A77B912C0, 0x2B4A97F70E0FC873, 0x415C7FA4DE96F43C, 0xE5EED95643E443FD,
					0xCBE18DB57C51B354, 0x51C96C3FFABD2D46, 0x5C14637B9A5765D6, 0x45D2369C4D0199A5,
					0x25A1F9C5BBF1E683, 0x000000025AD7A11B,
				},
			},
			Strategy: []uint32{
				0x42, 0x26, 0x15, 0x0C, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03,
				0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x09,
				0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x01, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x11,
				0x09, 0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x08, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04,
				0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x20, 0x11, 0x08, 0x04,
				0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x08, 0x04, 0x02, 0x01, 0x01, 0x01,
				0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x10, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04,
				0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x08, 0x04, 0x02, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
				0x01,
			},
			Exponent:      305,
			SecretBitLen:  305,
			SecretByteLen: 39,
		},
		B: Domain{
			// The x-coordinate of PB
			AffineP: field.Fp2{
				A: field.Fp{
					0x168B806A3D8AC520, 0x3DFD2047581F5033, 0xEAE45492C2405872, 0x8211D74A7B22D4A9,
					0x7E3259DDB0A1DCE2, 0x384F52990BF9AF11, 0x4F3227A1D26E8063, 0x49382F3B67D636A1,
					0xDC6B4CC47C11829A, 0x0000000155FB1B33,
				},
				B: field.Fp{
					0x54C167CE102F6789, 0x4233B23FEE2F2FF7, 0x452CEFAAD7843E12, 0xFFC603661998CDEF,
					0x9476B281650166FD, 0xE0685D4E11707DFD, 0x89B85675393A5F5C, 0x24E1111E69E2D97E,
					0x2B569FD381CB4AD1, 0x000000006F460D54,
				},
			},
			// The x-coordinate of QB
			AffineQ: field.Fp2{
				A: field.Fp{
					0x04DEC6B6F60743B4, 0x552DAE2F57F1160D, 0x88E72A13A243806F, 0x4512CA697006E97E,
					0x4AA3360D1917D430, 0xE7934BBDF9305F48, 0x4EC7396F2415E172, 0x7137C816845001C0,
					0xF5C4AEB2D9FDD2B5, 0x0000000113ABE810,
				},
				B: field.Fp{
					0xB3F36643ADFDEDCB, 0xCE61467CE5CA1FDC, 0x335E74C04413A0F8, 0xF8B66006B6874E5A,
					0xB97DEE8F35014318, 0x6925E40DB002FD90, 0x804D2C87A1D25019, 0x34574E30C7D32935,
					0x25ACACB105497044, 0x00000001DF4361D5,
				},
			},
			// The x-coordinate of RB = PB-QB
			AffineR: field.Fp2{
				A: field.Fp{
					0x8B5BA37263AA31C7, 0x1A46F0904F7DC5E1, 0x78FC23BCC1A91842, 0xA269947283824BDC,
					0xC86A8A049744120B, 0x9354DAE71E7C2F7A, 0xA4A069111312905B, 0x16FD969F59A0A39F,
					0x9CD4A62E3B5B827C, 0x0000000148EAB2E5,
				},
				B: field.Fp{
					0xAC8DBE322801418A, 0x1EA1B3492BC81038, 0xA10F9C7DD75E3333, 0x2768B282E8CAB7BB,
					0x31DB5B60DC6D4138, 0xA5C577CF7D3F5953, 0xF43D383E86D793B8, 0x09063482992D7C75,
					0x884696CE4C7DB6A9, 0x00000000E249D11F,
				},
			},
			Strategy: []uint32{
				0x56, 0x30, 0x1B, 0x0F, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x07,
				0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x01,
				0x01, 0x01, 0x01, 0x0C, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03,
				0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x15,
				0x0C, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03,
				0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03, 0x02, 0x01, 0x01,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x09, 0x05, 0x03, 0x02,
				0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x04, 0x02,
				0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x26, 0x15, 0x0C, 0x07,
				0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x01,
				0x01, 0x01, 0x01, 0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01,
				0x02, 0x01, 0x01, 0x01, 0x09, 0x05, 0x03, 0x02, 0x01, 0x01,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x11, 0x09, 0x05, 0x03, 0x02, 0x01,
				0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x04, 0x02, 0x01,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x08, 0x04, 0x02, 0x01, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
				0x01,
			},
			Exponent:      192,
			SecretBitLen:  304,
			SecretByteLen: 38,
		},
	})
}
