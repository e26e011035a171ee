package params

import (
	"github.com/jedisct1/go-sidh/field"
	"github.com/jedisct1/go-sidh/isogeny"
)

// p751: p = 2^372 * 3^239 - 1
var p751Prime = field.Prime{
	Words: 12,
	P: field.Fp{
		0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
		0xFFFFFFFFFFFFFFFF, 0xEEAFFFFFFFFFFFFF, 0xE3EC968549F878A8, 0xDA959B1A13F7CC76,
		0x084E9867D6EBE876, 0x8562B5045CB25748, 0x0E12909F97BADC66, 0x00006FE5D541F71C,
	},
	// 2p
	P2: field.Fp{
		0xFFFFFFFFFFFFFFFE, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF,
		0xFFFFFFFFFFFFFFFF, 0xDD5FFFFFFFFFFFFF, 0xC7D92D0A93F0F151, 0xB52B363427EF98ED,
		0x109D30CFADD7D0ED, 0x0AC56A08B964AE90, 0x1C25213F2F75B8CD, 0x0000DFCBAA83EE38,
	},
	// p+1
	P1: field.Fp{
		0x0000000000000000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0xEEB0000000000000, 0xE3EC968549F878A8, 0xDA959B1A13F7CC76,
		0x084E9867D6EBE876, 0x8562B5045CB25748, 0x0E12909F97BADC66, 0x00006FE5D541F71C,
	},
	// R^2 = (2^768)^2 mod p
	R2: field.Fp{
		0x233046449DAD4058, 0xDB010161A696452A, 0x5E36941472E3FD8E, 0xF40BFE2082A2E706,
		0x4932CCA8904F8751, 0x1F735F1F1EE7FC81, 0xA24F4D80C1048E18, 0xB56C383CCDB607C5,
		0x441DD47B735F9C90, 0x5673ED2C6A6AC82A, 0x06C905261132294B, 0x000041AD830F1F35,
	},
	// 1*R mod p
	One: field.Fp{
		0x00000000000249AD, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0x8310000000000000, 0x5527B1E4375C6C66, 0x697797BF3F4F24D0,
		0xC89DB7B2AC5C4E2E, 0x4CA4B439D2076956, 0x10F7926C7512C7E9, 0x00002D5B24BCE5E2,
	},
	// 1/2 * R mod p
	Half: field.Fp{
		0x00000000000124D6, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
		0x0000000000000000, 0xB8E0000000000000, 0x9C8A2434C0AA7287, 0xA206996CA9A378A3,
		0x6876280D41A41B52, 0xE903B49F175CE04F, 0x0F8511860666D227, 0x00004EA07CFF6E7F,
	},
	// Sliding window chain for x^((p-3)/4)
	Chain: field.Chain{
		Init: 13,
		Pow: []uint8{
			5, 7, 6, 2, 10, 4, 6, 9, 8, 5, 9, 4, 7, 5, 5, 4,
			8, 3, 9, 5, 5, 4, 10, 4, 6, 6, 6, 5, 8, 9, 3, 4,
			9, 4, 5, 6, 6, 2, 9, 4, 5, 5, 5, 7, 7, 9, 4, 6,
			4, 8, 5, 8, 6, 6, 2, 9, 7, 4, 8, 8, 8, 4, 6, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
			5, 5, 5, 5, 5, 5, 5, 5, 2,
		},
		Mul: []uint8{
			15, 11, 10, 0, 15, 3, 3, 3, 4, 4, 9, 7, 11, 11, 5, 3,
			12, 2, 10, 8, 5, 2, 8, 3, 5, 4, 11, 4, 0, 9, 2, 1,
			12, 7, 5, 14, 15, 0, 14, 5, 6, 4, 5, 13, 6, 9, 7, 15,
			1, 14, 11, 15, 12, 5, 0, 10, 9, 7, 7, 10, 14, 6, 11, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
			15, 15, 15, 15, 15, 15, 15, 15, 1,
		},
	},
}

// 6*R mod p
var p751Six = field.Fp{
	0x00000000000DBA10, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000,
	0x0000000000000000, 0x3500000000000000, 0x3714FE4EB8399915, 0xC3A2584753EB43F4,
	0xA3151D605C520428, 0xC116CF5232C7C978, 0x49A84D4B8EFAF6AA, 0x0000305731E97514,
}

func init() {
	register(&p751Prime, &Params{
		ID:   P751,
		Name: "p751",
		InitCurve: isogeny.Curve{
			A: field.Fp2{A: p751Six},
			C: field.Fp2{A: p751Prime.One},
		},
		A: Domain{
			// The x-coordinate of PA
			AffineP: field.Fp2{
				A: field.Fp{
					0x884F46B74000BAA8, 0xBA52630F939DEC20, 0xC16FB97BA714A04D, 0x082536745B1AB3DB,
					0x1117157F446F9E82, 0xD2F27D621A018490, 0x6B24AB523D544BCD, 0x9307D6AA2EA85C94,
					0xE1A096729528F20F, 0x896446F868F3255C, 0x2401D996B1BFF8A5, 0x00000EF8786A5C0A,
				},
				B: field.Fp{
					0xAEB78B3B96F59394, 0xAB26681E29C90B74, 0xE520AC30FDC4ACF1, 0x870AAAE3A4B8111B,
					0xF875BDB738D64EFF, 0x50109A7ECD7ED6BC, 0x4CC64848FF0C56FB, 0xE617CB6C519102C9,
					0x9C74B3835921E609, 0xC91DDAE4A35A7146, 0x7FC82A155C1B9129, 0x0000214FA6B980B3,
				},
			},
			// The x-coordinate of QA
			AffineQ: field.Fp2{
				A: field.Fp{
					0x0F93CC38680A8CA9, 0x762E733822E7FED7, 0xE549F005AC0ADB67, 0x94A71FDD2C43A4ED,
					0xD48645C2B04721C5, 0x432DA1FE4D4CA4DC, 0xBC99655FAA7A80E8, 0xB2C6D502BCFD4823,
					0xEE92F40CA2EC8BDB, 0x7B074132EFB6D16C, 0x3340B46FA38A7633, 0x0000215749657F6C,
				},
				B: field.Fp{
					0xECFF375BF3079F4C, 0xFBFE74B043E80EF3, 0x17376CBE3C5C7AD1, 0xC06327A7E29CDBF2,
					0x2111649C438BF3D4, 0xC1F9298261BA2E97, 0x1F9FECE869CFD1C2, 0x01A39B4FC9346D62,
					0x147CD1D3E82A3C9F, 0xDE84E9D249E533EE, 0x1C48A5ADFB7C578D, 0x000061ACA0B82E1D,
				},
			},
			// The x-coordinate of RA = PA-QA
			AffineR: field.Fp2{
				A: field.Fp{
					0x1600C525D41059F1, 0xA596899A0A1D83F7, 0x6BFDEED6D2B23F35, 0x5C7E707270C23910,
					0x276CA1A4E8369411, 0xB193651A602925A0, 0x243D239F1CA1F04A, 0x543DC6DA457860AD,
					0xCDA590F325181DE9, 0xD3AB7ACFDA80B395, 0x6C97468580FDDF7B, 0x0000352A3E5C4C77,
				},
				B: field.Fp{
					0x9B794F9FD1CC3EE8, 0xDB32E40A9B2FD23E, 0x26192A2542E42B67, 0xA18E94FCA045BCE7,
					0x96DC1BC38E7CDA2D, 0x9A1D91B752487DE2, 0xCC63763987436DA3, 0x1316717AACCC551D,
					0xC4C368A4632AFE72, 0x4B6EA85C9CCD5710, 0x7A12CAD582C7BC9A, 0x00001C7E240149BF,
				},
			},
			Strategy: []uint32{
				0x52, 0x2E, 0x1B, 0x0F, 0x08, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x07,
				0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x01,
				0x01, 0x01, 0x01, 0x0C, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03,
				0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01, 0x14,
				0x0B, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03,
				0x02, 0x01, 0x01, 0x01, 0x01, 0x04, 0x03, 0x02, 0x01, 0x01,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x09, 0x04, 0x03, 0x02, 0x01,
				0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x22, 0x15, 0x0C, 0x07, 0x04, 0x02,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01,
				0x01, 0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x01, 0x09, 0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01,
				0x02, 0x01, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x11, 0x08, 0x04, 0x02, 0x01, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x08,
				0x04, 0x02, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02,
				0x01, 0x01, 0x02, 0x01, 0x01,
			},
			Exponent:      372,
			SecretBitLen:  372,
			SecretByteLen: 47,
		},
		B: Domain{
			// The x-coordinate of PB
			AffineP: field.Fp2{
				A: field.Fp{
					0x890DFA2904AF0731, 0x2CAACA7D70DEB467, 0x82ED62FDFD19A7DA, 0xA2A3395320833870,
					0x0AAB558674BE546B, 0x1839123714875763, 0xBB0A70E599273AF9, 0x8C31A988C46F73F1,
					0xE7084465D918AAC8, 0x12EEEE87E940ACF1, 0xA47C9564F51B8B4A, 0x000053D3D145B08D,
				},
				B: field.Fp{
					0xB0299BD1B542AE6F, 0xD6C9DDE88A3065D0, 0xE9FB97A1A24371D2, 0x50A2BC9F77ADCAD9,
					0x30AF42E263AFC15C, 0xA0ED62F6FE851132, 0x9EB1FEE7242DFC46, 0x105A73085BEEB385,
					0xF5B9D281890B333D, 0x8D71F85D6F358D7A, 0x39C24EBEB4DE1A72, 0x000044BEAA22F1F4,
				},
			},
			// The x-coordinate of QB
			AffineQ: field.Fp2{
				A: field.Fp{
					0x203903F11E832E67, 0x939D1480CE3DF405, 0xFDAD7CEE2AE57AD6, 0x353FB6CA428904D9,
					0x80EA619269E62261, 0x570D65969EB4DAE5, 0x45C0A44CA465C582, 0x242419B288FAB942,
					0xB8FD05631169F097, 0x96E4083B7C13F444, 0x0637590348D946BB, 0x00005A597759323F,
				},
				B: field.Fp{
					0xF88F928E4D46ECB2, 0x276A364A5E56098D, 0x9945FC775E0A993E, 0x232FF4123AEFD404,
					0xDA2E0538D08D1FA6, 0xC2B013BA3AE367D5, 0x268B0C2C045656B1, 0x16ED74D29C733F50,
					0x465D99FE7D3A2464, 0xFF0875A1604E5929, 0xD75A249E7541BFEF, 0x000036807C270DF1,
				},
			},
			// The x-coordinate of RB = PB-QB
			AffineR: field.Fp2{
				A: field.Fp{
					0x40CFBA2F269FAA04, 0xB6BC51A4669E4654, 0xCB4E0C1EFEEE2F64, 0x028B00392A723B13,
					0xAF313338FFAE4031, 0xA0BE6DFE36F2308F, 0x7A60FF6B9E0B7719, 0x8EC351BB48834A6B,
					0xE5F9709F1E60AE7E, 0xD9FD7745E86EC07D, 0x3CCED612692096C9, 0x00003D108C008937,
				},
				B: field.Fp{
					0xAC227EE8BC551438, 0xB97F71E306FC74E8, 0x2A8DBFB2F3EEE381, 0xD56E25F59F3FB5F6,
					0x91C005D511031C2D, 0xF1BFA32C72BA9AAF, 0x82CC71A15C8DBA67, 0x14A6A0EBD6E45ABE,
					0xA503992728D18536, 0x9ECEF4B7E248DB6E, 0x8021E7E241789C7D, 0x00006DCF7B54DA3F,
				},
			},
			Strategy: []uint32{
				0x75, 0x3A, 0x1F, 0x10, 0x08, 0x04, 0x02, 0x01, 0x01, 0x01,
				0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x08, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x0F, 0x08, 0x04, 0x02, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03,
				0x02, 0x01, 0x01, 0x01, 0x01, 0x1B, 0x0F, 0x08, 0x04, 0x02,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02,
				0x01, 0x01, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x0C, 0x07, 0x04, 0x02,
				0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01,
				0x01, 0x05, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x01, 0x37, 0x1F, 0x0F, 0x08, 0x04, 0x02, 0x01, 0x01,
				0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02,
				0x01, 0x01, 0x01, 0x01, 0x0F, 0x08, 0x04, 0x02, 0x01, 0x01,
				0x02, 0x01, 0x01, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01,
				0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01, 0x01, 0x03, 0x02,
				0x01, 0x01, 0x01, 0x01, 0x1B, 0x0D, 0x07, 0x04, 0x02, 0x01,
				0x01, 0x02, 0x01, 0x01, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01,
				0x06, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x03, 0x01, 0x01,
				0x01, 0x01, 0x0C, 0x07, 0x04, 0x02, 0x01, 0x01, 0x02, 0x01,
				0x01, 0x03, 0x02, 0x01, 0x01, 0x01, 0x01, 0x05, 0x03, 0x02,
				0x01, 0x01, 0x01, 0x01, 0x02, 0x01, 0x01, 0x01,
			},
			Exponent:      239,
			SecretBitLen:  378,
			SecretByteLen: 48,
		},
	})
}
