package params

import (
	"github.com/jedisct1/go-sidh/field"
	"github.com/jedisct1/go-sidh/isogeny"
)

// p503: p = 2^250 * 3^159 - 1
var p503Prime = field.Prime{
	Words: 8,
	P: field.Fp{
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xABFFFFFFFFFFFFFF,
		0x13085BDA2211E7A0, 0x1B9BF6C87B7E7DAF, 0x6045C6BDDA77A4D0, 0x004066F541811E1E,
	},
	// 2p
	P2: field.Fp{
		0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x57FFFFFFFFFFFFFF,
		0x2610B7B44423CF41, 0x3737ED90F6FCFB5E, 0xC08B8D7BB4EF49A0, 0x0080CDEA83023C3C,
	},
	// p+1
	P1: field.Fp{
		0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0xAC00000000000000,
		0x13085BDA2211E7A0, 0x1B9BF6C87B7E7DAF, 0x6045C6BDDA77A4D0, 0x004066F541811E1E,
	},
	// R^2 = (2^512)^2 mod p
	R2: field.Fp{
		0x5289A0CF641D011F, 0x9B88257189FED2B9, 0xA3B365D58DC8F17A, 0x5BC57AB6EFF168EC,
		0x9E51998BD84D4423, 0xBF8999CBAC3B5695, 0x46E9127BCE14CDB6, 0x003F6CFCE8B81771,
	},
	// 1*R mod p
	One: field.Fp{
		0x00000000000003F9, 0x0000000000000000, 0x0000000000000000, 0xB400000000000000,
		0x63CB1A6EA6DED2B4, 0x51689D8D667EB37D, 0x8ACD77C71AB24142, 0x0026FBAEC60F5953,
	},
	// 1/2 * R mod p
	Half: field.Fp{
		0x00000000000001FC, 0x0000000000000000, 0x0000000000000000, 0xB000000000000000,
		0x3B69BB2464785D2A, 0x36824A2AF0FE9896, 0xF5899F427A94F309, 0x0033B15203C83BB8,
	},
	// Sliding window chain for x^((p-3)/4)
	Chain: field.Chain{
		Init: 0,
		Pow: []uint8{
			12, 5, 5, 2, 7, 11, 3, 8, 4, 11, 4, 7, 5, 6, 3, 7,
			5, 7, 2, 12, 5, 6, 4, 6, 8, 6, 4, 7, 5, 5, 8, 5,
			8, 5, 5, 8, 9, 3, 6, 2, 10, 6, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 3,
		},
		Mul: []uint8{
			12, 11, 10, 0, 1, 8, 3, 7, 1, 8, 3, 6, 7, 14, 2, 14,
			14, 9, 0, 13, 9, 15, 5, 12, 7, 13, 7, 15, 6, 7, 9, 0,
			5, 7, 6, 8, 8, 3, 7, 0, 10, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 3,
		},
	},
}

// 6*R mod p
var p503Six = field.Fp{
	0x00000000000017D9, 0x0000000000000000, 0x0000000000000000, 0x3400000000000000,
	0x1DA98B098303395A, 0x959FCCF6F47CBBE3, 0x1FFF7A7110C6991D, 0x0028B138DFD8BD9A,
}

func init() {
	register(&p503Prime, &Params{
		ID:   P503,
		Name: "p503",
		InitCurve: isogeny.Curve{
			A: field.Fp2{A: p503Six},
			C: field.Fp2{A: p503Prime.One},
		},
		A: Domain{
			// The x-coordinate of PA
			AffineP: field.Fp2{
				A: field.Fp{
					0x5D083011589AD893, 0xADFD8D2CB67D0637, 0x330C9AC34FFB6361, 0xF0D47489A2E805A2,
					0x27E2789259C6B8DC, 0x63866A2C121931B9, 0x8D4C65A7137DCF44, 0x003A183AE5967B3F,
				},
				B: field.Fp{
					0x7E3541B8C96D1519, 0xD3ADAEEC0D61A26C, 0xC0A2219CE7703DD9, 0xFF3E46658FCDBC52,
					0xD5B38DEAE6E196FF, 0x1AAC826364956D58, 0xEC9F4875B9A5F27A, 0x001B0B475AB99843,
				},
			},
			// The x-coordinate of QA
			AffineQ: field.Fp2{
				A: field.Fp{
					0x4D83695107D03BAD, 0x221F3299005E2FCF, 0x78E6AE22F30DECF2, 0x6D982DB5111253E4,
					0x504C80A8AB4526A8, 0xEFD0C3AA210BB024, 0xCB77483501DC6FCF, 0x001052544A96BDF3,
				},
				B: field.Fp{
					0x0D74FE3402BCAE47, 0xDF5B8CDA832D8AED, 0xB86BCF06E4BD837E, 0x892A2933A0FA1F63,
					0x9F88FC67B6CCB461, 0x822926EA9DDA3AC8, 0xEAC8DDE5855425ED, 0x000618FE6DA37A80,
				},
			},
			// The x-coordinate of RA = PA-QA
			AffineR: field.Fp2{
				A: field.Fp{
					0x6B6F4A4F786CF310, 0xB019D444BDCFDBE3, 0xA14CB06680607834, 0xCB0D5582E7E6E60A,
					0xBA4EE8771667E241, 0xE42A114FCB12E5FF, 0x9A0C074E275BCD98, 0x001871329B28689E,
				},
				B: field.Fp{
					0x685FA8378513FE76, 0x84E8FC1785E8BDF0, 0x8A380F177CB7C1B7, 0x2227464F4F812C94,
					0x117C94A81A90C279, 0x193D73132FB9FA28, 0x99335336F192C9EB, 0x0006C2FE778A34FD,
				},
			},
			Strategy: []uint32{
				0x3D, 0x20, 0x10, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x08, 0x04,
				0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01,
				0x02, 0x01, 0x01, 0x10, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x08,
				0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x1D, 0x10, 0x08, 0x04, 0x02, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04,
				0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x0E, 0x07, 0x04, 0x02,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01,
				0x01, 0x06, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x02,
				0x02, 0x01, 0x01, 0x01,
			},
			Exponent:      250,
			SecretBitLen:  250,
			SecretByteLen: 32,
		},
		B: Domain{
			// The x-coordinate of PB
			AffineP: field.Fp2{
				A: field.Fp{
					0x6DEC160574AE592C, 0xD9EC6E995CD95826, 0xB7F5E06BED6B1016, 0x7A3A620CE697D731,
					0xCDFAC6AFDFB6C547, 0xFD482A99CCFDD4B7, 0xEF796E25A96795C0, 0x0027E9724F258388,
				},
				B: field.Fp{
					0x25CC64E02E091FEA, 0x87126E721ED1709B, 0x7224F5AD022C8502, 0xA9954E81A52D5DDE,
					0xE1F5B2F577CF8927, 0xBF7E52D5F2F656BA, 0xC94D8693AA5AF67B, 0x003AF231F3A23B8D,
				},
			},
			// The x-coordinate of QB
			AffineQ: field.Fp2{
				A: field.Fp{
					0x448415E2C9FAFAFB, 0x9886D7921137148B, 0x05E83DFCBCC6E26F, 0x3808F2C44CAC99B1,
					0xFCA1819C81C4B729, 0x00948682866C87F3, 0xB749548E1DC51F77, 0x003DD90879986A75,
				},
				B: field.Fp{
					0xCB5422E8C90A127B, 0x7B4C1AE0B6D03702, 0x701420406AC3B6FA, 0x09F099DA2828C708,
					0x389748AFB8C31410, 0x1E1B546FAF594279, 0xB26DDCA523C5A6BD, 0x003600EC2E744ED9,
				},
			},
			// The x-coordinate of RB = PB-QB
			AffineR: field.Fp2{
				A: field.Fp{
					0x9C02D87C09EC77BE, 0xBF4C21B11EE239E8, 0xA4A1980FF5830FD5, 0x85BDFEDCA1913EA3,
					0xFB16C9CE9FAB9E59, 0x4F6D54A0E261F318, 0x678B7E0F0968603A, 0x0009CE0A08259D31,
				},
				B: field.Fp{
					0xC551B11C82A4CCCB, 0xFA20F9676D1CECFE, 0x9738DFF248CC3474, 0xC2CA47C2DBBB0656,
					0x2B882657719A9B1F, 0x592114E0944A3B18, 0xF682DD1B52CEF59B, 0x003CFBD68E90CCF4,
				},
			},
			Strategy: []uint32{
				0x48, 0x27, 0x15, 0x0C, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03,
				0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x09,
				0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x01, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x11,
				0x0A, 0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x01, 0x05, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x01, 0x08, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x22, 0x11, 0x09,
				0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x01, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x08,
				0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x11, 0x08, 0x04, 0x02, 0x01,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x08, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
			},
			Exponent:      159,
			SecretBitLen:  252,
			SecretByteLen: 32,
		},
	})
}
