// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package square

// Diagonal identifies one of the 15 a1-h8-parallel diagonals a square can
// lie on, indexed 0..14 from the h1 corner diagonal to the a8 corner one.
type Diagonal int8

// DiagonalN is the number of a1-h8-parallel diagonals.
const DiagonalN = 15

// AntiDiagonal identifies one of the 15 a8-h1-parallel diagonals a square
// can lie on, indexed 0..14 from the a1 corner diagonal to the h8 one.
type AntiDiagonal int8

// AntiDiagonalN is the number of a8-h1-parallel diagonals.
const AntiDiagonalN = 15
