// This file is part of n64loader.
//
// n64loader is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// n64loader is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with n64loader.  If not, see <https://www.gnu.org/licenses/>.

package heuristic

import (
	"github.com/n64loader/n64loader/profile"
)

// cartridges maps the cartridge identifier to the save memory and
// peripherals of the title. identifiers that also depend on the region or
// revision of the image are in the exceptions table.
var cartridges = map[string]cartridge{
	// 512 byte EEPROM
	"NTW": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // 64 de Hakken!! Tamagotchi
	"NHF": {Memory: profile.MemoryEEPROM512},                                                                                            // 64 Hanafuda: Tenshi no Yakusoku
	"NOS": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // 64 Oozumou
	"NTC": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // 64 Trump Collection
	"NER": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Aero Fighters Assault [Sonic Wings Assault (J)]
	"NAG": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // AeroGauge
	"NAB": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Air Boarder 64
	"NS3": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // AI Shougi 3
	"NTN": {Memory: profile.MemoryEEPROM512},                                                                                            // All Star Tennis '99
	"NBN": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Bakuretsu Muteki Bangaioh
	"NBK": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Banjo-Kazooie [Banjo to Kazooie no Daiboken (J)]
	"NFH": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // In-Fisherman Bass Hunter 64
	"NMU": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Big Mountain 2000
	"NBC": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Blast Corps
	"NBH": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Body Harvest
	"NHA": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Bomberman 64: Arcade Edition (J)
	"NBM": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Bomberman 64 [Baku Bomberman (J)]
	"NBV": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Bomberman 64: The Second Attack! [Baku Bomberman 2 (J)]
	"NBD": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Bomberman Hero [Mirian Ojo o Sukue! (J)]
	"NCT": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Chameleon Twist
	"NCH": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Chopper Attack
	"NCG": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true, TransferPak: true}}, // Choro Q 64 II - Hacha Mecha Grand Prix Race (J)
	"NP2": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Chou Kuukan Night Pro Yakyuu King 2 (J)
	"NXO": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Cruis'n Exotica
	"NCU": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Cruis'n USA
	"NCX": {Memory: profile.MemoryEEPROM512},                                                                                            // Custom Robo
	"NDY": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Diddy Kong Racing
	"NDQ": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Disney's Donald Duck - Goin' Quackers [Quack Attack (E)]
	"NDR": {Memory: profile.MemoryEEPROM512},                                                                                            // Doraemon: Nobita to 3tsu no Seireiseki
	"NN6": {Memory: profile.MemoryEEPROM512},                                                                                            // Dr. Mario 64
	"NDU": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Duck Dodgers starring Daffy Duck
	"NJM": {Memory: profile.MemoryEEPROM512},                                                                                            // Earthworm Jim 3D
	"NFW": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // F-1 World Grand Prix
	"NF2": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // F-1 World Grand Prix II
	"NKA": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Fighters Destiny [Fighting Cup (J)]
	"NFG": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Fighter Destiny 2
	"NGL": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Getter Love!!
	"NGV": {Memory: profile.MemoryEEPROM512},                                                                                            // Glover
	"NGE": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // GoldenEye 007
	"NHP": {Memory: profile.MemoryEEPROM512},                                                                                            // Heiwa Pachinko World 64
	"NPG": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Hey You, Pikachu! [Pikachu Genki Dechu (J)]
	"NIJ": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Indiana Jones and the Infernal Machine
	"NIC": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Indy Racing 2000
	"NFY": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Kakutou Denshou: F-Cup Maniax
	"NKI": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Killer Instinct Gold
	"NLL": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Last Legion UX
	"NLR": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Lode Runner 3-D
	"NKT": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Mario Kart 64
	"CLB": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Mario Party (NTSC)
	"NLB": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Mario Party (PAL)
	"NMW": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Mario Party 2
	"NML": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true, TransferPak: true}},                      // Mickey's Speedway USA [Mickey no Racing Challenge USA (J)]
	"NTM": {Memory: profile.MemoryEEPROM512},                                                                                            // Mischief Makers [Yuke Yuke!! Trouble Makers (J)]
	"NMI": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Mission: Impossible
	"NMG": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Monaco Grand Prix [Racing Simulation 2 (G)]
	"NMO": {Memory: profile.MemoryEEPROM512},                                                                                            // Monopoly
	"NMS": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Morita Shougi 64
	"NMR": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Multi-Racing Championship
	"NCR": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Penny Racers [Choro Q 64 (J)]
	"NEA": {Memory: profile.MemoryEEPROM512},                                                                                            // PGA European Tour
	"NPW": {Memory: profile.MemoryEEPROM512},                                                                                            // Pilotwings 64
	"NPY": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Puyo Puyo Sun 64
	"NPT": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true, TransferPak: true}},                      // Puyo Puyon Party
	"NRA": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Rally '99 (J)
	"NWQ": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Rally Challenge 2000
	"NSU": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Rocket: Robot on Wheels
	"NSN": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Snow Speeder (J)
	"NK2": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Snowboard Kids 2 [Chou Snobow Kids (J)]
	"NSV": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Space Station Silicon Valley
	"NFX": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Star Fox 64 [Lylat Wars (E)]
	"NS6": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Star Soldier: Vanishing Earth
	"NNA": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Star Wars Episode I: Battle for Naboo
	"NRS": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Star Wars: Rogue Squadron [Shutsugeki! Rogue Chuutai (J)]
	"NSW": {Memory: profile.MemoryEEPROM512},                                                                                            // Star Wars: Shadows of the Empire [Teikoku no Kage (J)]
	"NSC": {Memory: profile.MemoryEEPROM512},                                                                                            // Starshot: Space Circus Fever
	"NSA": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Sonic Wings Assault (J)
	"NB6": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, TransferPak: true}},                  // Super B-Daman: Battle Phoenix 64
	"NSS": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Super Robot Spirits
	"NTX": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Taz Express
	"NT6": {Memory: profile.MemoryEEPROM512},                                                                                            // Tetris 64
	"NTP": {Memory: profile.MemoryEEPROM512},                                                                                            // Tetrisphere
	"NTJ": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Tom & Jerry in Fists of Fury
	"NRC": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Top Gear Overdrive
	"NTR": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Top Gear Rally (J + E)
	"NTB": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Transformers: Beast Wars Metals 64 (J)
	"NGU": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Tsumi to Batsu: Hoshi no Keishousha (Sin and Punishment)
	"NIR": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Utchan Nanchan no Hono no Challenger: Denryuu Ira Ira Bou
	"NVL": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // V-Rally Edition '99
	"NVY": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // V-Rally Edition '99 (J)
	"NWC": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Wild Choppers
	"NAD": {Memory: profile.MemoryEEPROM512},                                                                                            // Worms Armageddon (U)
	"NWU": {Memory: profile.MemoryEEPROM512},                                                                                            // Worms Armageddon (E)
	"NYK": {Memory: profile.MemoryEEPROM512, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Yakouchuu II: Satsujin Kouro
	"NMZ": {Memory: profile.MemoryEEPROM512},                                                                                            // Zool - Majou Tsukai Densetsu (J)

	// 2KB EEPROM
	"NB7": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Banjo-Tooie [Banjo to Kazooie no Daiboken 2 (J)]
	"NGT": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // City Tour GrandPrix - Zen Nihon GT Senshuken
	"NFU": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Conker's Bad Fur Day
	"NCW": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Cruis'n World
	"NCZ": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Custom Robo V2
	"ND6": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Densha de Go! 64
	"NDO": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Donkey Kong 64
	"ND2": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Doraemon 2: Nobita to Hikari no Shinden
	"N3D": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Doraemon 3: Nobita no Machi SOS!
	"NMX": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Excitebike 64
	"NGC": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // GT 64: Championship Edition
	"NIM": {Memory: profile.MemoryEEPROM2k},                                                                                            // Ide Yosuke no Mahjong Juku
	"NNB": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Kobe Bryant in NBA Courtside
	"NMV": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Mario Party 3
	"NM8": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true, TransferPak: true}},                      // Mario Tennis
	"NEV": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Neon Genesis Evangelion
	"NPP": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Parlor! Pro 64: Pachinko Jikki Simulation Game
	"NUB": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{ControllerPak: true, TransferPak: true}},                  // PD Ultraman Battle Collection 64
	"NPD": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true, TransferPak: true}}, // Perfect Dark
	"NRZ": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Ridge Racer 64
	"NR7": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{TransferPak: true}},                                       // Robot Poncots 64: 7tsu no Umi no Caramel
	"NEP": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Star Wars Episode I: Racer
	"NYS": {Memory: profile.MemoryEEPROM2k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Yoshi's Story

	// 32KB SRAM
	"NTE": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // 1080 Snowboarding
	"NVB": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Bass Rush - ECOGEAR PowerWorm Championship (J)
	"NB5": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Biohazard 2 (J)
	"CFZ": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // F-Zero X (J)
	"NFZ": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // F-Zero X (U + E)
	"NSI": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Fushigi no Dungeon: Fuurai no Shiren 2
	"NG6": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Ganmare Goemon: Dero Dero Douchuu Obake Tenkomori
	"NGP": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Goemon: Mononoke Sugoroku
	"NYW": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Harvest Moon 64
	"NHY": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Hybrid Heaven (J)
	"NIB": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Itoi Shigesato no Bass Tsuri No. 1 Kettei Ban!
	"NPS": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Jikkyou J.League 1999: Perfect Striker 2
	"NPA": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, TransferPak: true}},                  // Jikkyou Powerful Pro Yakyuu 2000
	"NP4": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Jikkyou Powerful Pro Yakyuu 4
	"NJ5": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Jikkyou Powerful Pro Yakyuu 5
	"NP6": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, TransferPak: true}},                  // Jikkyou Powerful Pro Yakyuu 6
	"NPE": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Jikkyou Powerful Pro Yakyuu Basic Ban 2001
	"NJG": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Jinsei Game 64
	"CZL": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Legend of Zelda: Ocarina of Time [Zelda no Densetsu - Toki no Ocarina (J)]
	"NZL": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Legend of Zelda: Ocarina of Time (E)
	"NKG": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Major League Baseball featuring Ken Griffey Jr.
	"NMF": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true, TransferPak: true}},                      // Mario Golf 64
	"NRI": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // New Tetris, The
	"NUT": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true, TransferPak: true}}, // Nushi Zuri 64
	"NUM": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true, TransferPak: true}},                      // Nushi Zuri 64: Shiokaze ni Notte
	"NOB": {Memory: profile.MemorySRAM32k},                                                                                            // Ogre Battle 64: Person of Lordly Caliber
	"CPS": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{TransferPak: true}},                                       // Pocket Monsters Stadium (J)
	"NPM": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Premier Manager 64
	"NRE": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Resident Evil 2
	"NAL": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Super Smash Bros. [Nintendo All-Star! Dairantou Smash Brothers (J)]
	"NT3": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true}},                                     // Shin Nihon Pro Wrestling - Toukon Road 2 - The Next Generation (J)
	"NS4": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, TransferPak: true}},                  // Super Robot Taisen 64
	"NA2": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Virtual Pro Wrestling 2
	"NVP": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // Virtual Pro Wrestling 64
	"NWL": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // Waialae Country Club: True Golf Classics
	"NW2": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{RumblePak: true}},                                         // WCW-nWo Revenge
	"NWX": {Memory: profile.MemorySRAM32k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}},                    // WWF WrestleMania 2000

	// 96KB SRAM
	"CDZ": {Memory: profile.MemorySRAM96k, Peripherals: profile.Peripherals{RumblePak: true}}, // Dezaemon 3D

	// 128KB flash
	"NCC": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // Command & Conquer
	"NDA": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{ControllerPak: true}},                  // Derby Stallion 64
	"NAF": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{ControllerPak: true, RTC: true}},       // Doubutsu no Mori
	"NJF": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // Jet Force Gemini [Star Twins (J)]
	"NKJ": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // Ken Griffey Jr.'s Slugfest
	"NZS": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // Legend of Zelda: Majora's Mask [Zelda no Densetsu - Mujura no Kamen (J)]
	"NM6": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // Mega Man 64
	"NCK": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // NBA Courtside 2 featuring Kobe Bryant
	"NMQ": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // Paper Mario
	"NPN": {Memory: profile.MemoryFlash128k},                                                                         // Pokemon Puzzle League
	"NPF": {Memory: profile.MemoryFlash128k},                                                                         // Pokemon Snap [Pocket Monsters Snap (J)]
	"NPO": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{TransferPak: true}},                    // Pokemon Stadium
	"CP2": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{TransferPak: true}},                    // Pocket Monsters Stadium 2 (J)
	"NP3": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{TransferPak: true}},                    // Pokemon Stadium 2 [Pocket Monsters Stadium - Kin Gin (J)]
	"NRH": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // Rockman Dash - Hagane no Boukenshin (J)
	"NSQ": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{RumblePak: true}},                      // StarCraft 64
	"NT9": {Memory: profile.MemoryFlash128k},                                                                         // Tigger's Honey Hunt
	"NW4": {Memory: profile.MemoryFlash128k, Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // WWF No Mercy
	"NDP": {Memory: profile.MemoryFlash128k},                                                                         // Dinosaur Planet (Unlicensed)

	// controller pak only
	"NO7": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // The World Is Not Enough
	"NAY": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Aidyn Chronicles - The First Mage
	"NBS": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // All-Star Baseball '99
	"NBE": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // All-Star Baseball 2000
	"NAS": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // All-Star Baseball 2001
	"NAR": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Armorines - Project S.W.A.R.M.
	"NAC": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Army Men - Air Combat
	"NAM": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Army Men - Sarge's Heroes
	"N32": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Army Men - Sarge's Heroes 2
	"NAH": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Asteroids Hyper 64
	"NLC": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Automobili Lamborghini [Super Speed Race 64 (J)]
	"NBJ": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Bakushou Jinsei 64 - Mezase! Resort Ou
	"NB4": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Bass Masters 2000
	"NBX": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Battletanx
	"NBQ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Battletanx - Global Assault
	"NZO": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Battlezone - Rise of the Black Dogs
	"NNS": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Beetle Adventure Racing
	"NB8": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Beetle Adventure Racing (J)
	"NBF": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Bio F.R.E.A.K.S.
	"NBP": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Blues Brothers 2000
	"NBO": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Bottom of the 9th
	"NOW": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Brunswick Circuit Pro Bowling
	"NBL": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Buck Bumble
	"NBY": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Bug's Life, A
	"NB3": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Bust-A-Move '99 [Bust-A-Move 3 DX (E)]
	"NBU": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Bust-A-Move 2 - Arcade Edition
	"NCL": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // California Speed
	"NCD": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Carmageddon 64
	"NTS": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Centre Court Tennis [Let's Smash (J)]
	"NV2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Chameleon Twist 2
	"NPK": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Chou Kuukan Night Pro Yakyuu King (J)
	"NT4": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // CyberTiger
	"NDW": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Daikatana, John Romero's
	"NGA": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Deadly Arts [G.A.S.P!! Fighter's NEXTream (E-J)]
	"NDE": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Destruction Derby 64
	"NTA": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Disney's Tarzan
	"NDM": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Doom 64
	"NDH": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Duel Heroes
	"NDN": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Duke Nukem 64
	"NDZ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Duke Nukem - Zero Hour
	"NWI": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // ECW Hardcore Revolution
	"NST": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Eikou no Saint Andrews
	"NET": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Quest 64 [Eltale Monsters (J) Holy Magic Century (E)]
	"NEG": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Extreme-G
	"NG2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Extreme-G XG2
	"NHG": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // F-1 Pole Position 64
	"NFR": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // F-1 Racing Championship
	"N8I": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // FIFA - Road to World Cup 98 [World Cup e no Michi (J)]
	"N9F": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // FIFA 99
	"N7I": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // FIFA Soccer 64 [FIFA 64 (E)]
	"NFS": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Famista 64
	"NFF": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Fighting Force 64
	"NFD": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Flying Dragon
	"NFO": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Forsaken 64
	"NF9": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Fox Sports College Hoops '99
	"NG5": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Ganbare Goemon - Neo Momoyama Bakufu no Odori [Mystical Ninja Starring Goemon]
	"NGX": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Gauntlet Legends
	"NGD": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Gauntlet Legends (J)
	"NX3": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Gex 3 - Deep Cover Gecko
	"NX2": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Gex 64 - Enter the Gecko
	"NGM": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Goemon's Great Adventure [Mystical Ninja 2 Starring Goemon]
	"NGN": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Golden Nugget 64
	"NHS": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Hamster Monogatari 64
	"NM9": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Harukanaru Augusta Masters 98
	"NHC": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Hercules - The Legendary Journeys
	"NHX": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Hexen
	"NHK": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Hiryuu no Ken Twin
	"NHW": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Hot Wheels Turbo Racing
	"NHV": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Hybrid Heaven (U + E)
	"NHT": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Hydro Thunder
	"NWB": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Iggy's Reckin' Balls [Iggy-kun no Bura Bura Poyon (J)]
	"NWS": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // International Superstar Soccer '98 [Jikkyo World Soccer - World Cup France '98 (J)]
	"NIS": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // International Superstar Soccer 2000
	"NJP": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // International Superstar Soccer 64 [Jikkyo J-League Perfect Striker (J)]
	"NDS": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // J.League Dynamite Soccer 64
	"NJE": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // J.League Eleven Beat 1997
	"NJL": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // J.League Live 64
	"NMA": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Jangou Simulation Mahjong Do 64
	"NCO": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Jeremy McGrath Supercross 2000
	"NGS": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Jikkyou G1 Stable
	"NJ3": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Jikkyou World Soccer 3
	"N64": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Kira to Kaiketsu! 64 Tanteidan
	"NKK": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Knockout Kings 2000
	"NLG": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // LEGO Racers
	"N8M": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Madden Football 64
	"NMD": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Madden Football 2000
	"NFL": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Madden Football 2001
	"N2M": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Madden Football 2002
	"N9M": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Madden Football '99
	"NMJ": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Mahjong 64
	"NMM": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Mahjong Master
	"NHM": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Mia Hamm Soccer 64
	"NWK": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Michael Owens WLS 2000 [World League Soccer 2000 (E) / Telefoot Soccer 2000 (F)]
	"NV3": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Micro Machines 64 Turbo
	"NAI": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Midway's Greatest Arcade Hits Volume 1
	"NMB": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Mike Piazza's Strike Zone
	"NBR": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Milo's Astro Lanes
	"NM4": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Mortal Kombat 4
	"NMY": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Mortal Kombat Mythologies - Sub-Zero
	"NP9": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Ms. Pac-Man - Maze Madness
	"NH5": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Nagano Winter Olympics '98 [Hyper Olympics in Nagano (J)]
	"NNM": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Namco Museum 64
	"N9C": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Nascar '99
	"NN2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Nascar 2000
	"NXG": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // NBA Hangtime
	"NBA": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NBA In the Zone '98 [NBA Pro '98 (E)]
	"NB2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NBA In the Zone '99 [NBA Pro '99 (E)]
	"NWZ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NBA In the Zone 2000
	"NB9": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // NBA Jam '99
	"NJA": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NBA Jam 2000
	"N9B": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NBA Live '99
	"NNL": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NBA Live 2000
	"NSO": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // NBA Showtime - NBA on NBC
	"NBZ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Blitz
	"NSZ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Blitz - Special Edition
	"NBI": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Blitz 2000
	"NFB": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Blitz 2001
	"NQ8": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Quarterback Club '98
	"NQ9": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Quarterback Club '99
	"NQB": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Quarterback Club 2000
	"NQC": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NFL Quarterback Club 2001
	"N9H": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NHL '99
	"NHO": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NHL Blades of Steel '99 [NHL Pro '99 (E)]
	"NHL": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NHL Breakaway '98
	"NH9": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // NHL Breakaway '99
	"NNC": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Nightmare Creatures
	"NCE": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Nuclear Strike 64
	"NOF": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Offroad Challenge
	"NHN": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Olympic Hockey Nagano '98
	"NOM": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Onegai Monsters
	"NPC": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Pachinko 365 Nichi (J)
	"NYP": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Paperboy
	"NPX": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Polaris SnoCross
	"NPL": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Power League 64 (J)
	"NPU": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Power Rangers - Lightspeed Rescue
	"NKM": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Pro Mahjong Kiwame 64 (J)
	"NNR": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Pro Mahjong Tsuwamono 64 - Jansou Battle ni Chousen (J)
	"NPB": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Puzzle Bobble 64 (J)
	"NQK": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Quake 64
	"NQ2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Quake 2
	"NKR": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Rakuga Kids (E)
	"NRP": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Rampage - World Tour
	"NRT": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Rat Attack
	"NRX": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Robotron 64
	"NY2": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Rayman 2 - The Great Escape
	"NFQ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Razor Freestyle Scooter
	"NRV": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Re-Volt
	"NRD": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Ready 2 Rumble Boxing
	"N22": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Ready 2 Rumble Boxing - Round 2
	"NRO": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Road Rash 64
	"NRR": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Roadster's Trophy
	"NRK": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Rugrats in Paris - The Movie
	"NR2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Rush 2 - Extreme Racing USA
	"NCS": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // S.C.A.R.S.
	"NDC": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // SD Hiryuu no Ken Densetsu (J)
	"NSH": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Saikyou Habu Shougi (J)
	"NSF": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // San Francisco Rush - Extreme Racing
	"NRU": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // San Francisco Rush 2049
	"NSY": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Scooby-Doo! - Classic Creep Capers
	"NSD": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Shadow Man
	"NSG": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Shadowgate 64 - Trials Of The Four Towers
	"NTO": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Shin Nihon Pro Wrestling - Toukon Road - Brave Spirits (J)
	"NS2": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Simcity 2000
	"NSK": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Snowboard Kids [Snobow Kids (J)]
	"NDT": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // South Park
	"NPR": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // South Park Rally
	"NIV": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Space Invaders
	"NSL": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Spider-Man
	"NR3": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Stunt Racer 64
	"NBW": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Super Bowling
	"NSX": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Supercross 2000
	"NSP": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Superman
	"NPZ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Susume! Taisen Puzzle Dama Toukon! Marumata Chou (J)
	"NL2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Top Gear Rally 2
	"NR6": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Tom Clancy's Rainbow Six
	"NTT": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Tonic Trouble
	"NTF": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Tony Hawk's Pro Skater
	"NTQ": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Tony Hawk's Pro Skater 2
	"N3T": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Tony Hawk's Pro Skater 3
	"NGB": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Top Gear Hyper Bike
	"NGR": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Top Gear Rally (U)
	"NTH": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Toy Story 2 - Buzz Lightyear to the Rescue!
	"N3P": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Triple Play 2000
	"NTU": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Turok: Dinosaur Hunter [Turok: Jikuu Senshi (J)]
	"NRW": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Turok: Rage Wars
	"NT2": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Turok 2 - Seeds of Evil [Violence Killer - Turok New Generation (J)]
	"NTK": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Turok 3 - Shadow of Oblivion
	"NSB": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Twisted Edge - Extreme Snowboarding [King Hill 64 - Extreme Snowboarding (J)]
	"NV8": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Vigilante 8
	"NVG": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Vigilante 8 - Second Offense
	"NVC": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Virtual Chess 64
	"NVR": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Virtual Pool 64
	"NWV": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // WCW: Backstage Assault
	"NWM": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // WCW: Mayhem
	"NW3": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // WCW: Nitro
	"NWN": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // WCW vs. nWo - World Tour
	"NWW": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // WWF: War Zone
	"NTI": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // WWF: Attitude
	"NWG": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Wayne Gretzky's 3D Hockey
	"NW8": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Wayne Gretzky's 3D Hockey '98
	"NWD": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Winback - Covert Operations
	"NWP": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Wipeout 64
	"NJ2": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // Wonder Project J2 - Koruro no Mori no Jozet (J)
	"N8W": {Peripherals: profile.Peripherals{ControllerPak: true}},                  // World Cup '98
	"NWO": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // World Driver Championship
	"NXF": {Peripherals: profile.Peripherals{ControllerPak: true, RumblePak: true}}, // Xena Warrior Princess - The Talisman of Fate

	// rumble pak only
	"NJQ": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Batman Beyond - Return of the Joker [Batman of the Future - Return of the Joker (E)]
	"NCB": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Charlie Blast's Territory
	"NDF": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Dance Dance Revolution - Disney Dancing Museum
	"NKE": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Knife Edge - Nose Gunner
	"NMT": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Magical Tetris Challenge
	"NM3": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Monster Truck Madness 64
	"NRG": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Rugrats - Scavenger Hunt [Treasure Hunt (E)]
	"NOH": {Peripherals: profile.Peripherals{RumblePak: true, TransferPak: true}}, // Transformers Beast Wars - Transmetals
	"NWF": {Peripherals: profile.Peripherals{RumblePak: true}},                    // Wheel of Fortune
}
