package lib

const MemorySize = 0x10000

/* the full 16-bit address space. There is no mirroring or io mapping here,
 * that is the job of whatever sits on top of the cpu.
 */
type Memory [MemorySize]byte

func (memory *Memory) Store(address uint16, value byte){
    memory[address] = value
}

func (memory *Memory) Load(address uint16) byte {
    return memory[address]
}

/* little endian, address+1 wraps around at 0xffff */
func (memory *Memory) Load16(address uint16) uint16 {
    low := uint16(memory.Load(address))
    high := uint16(memory.Load(address + 1))
    return (high<<8) | low
}

/* copy data starting at address, wrapping at the end of the address space */
func (memory *Memory) Copy(address uint16, data []byte){
    for i, value := range data {
        memory.Store(address + uint16(i), value)
    }
}

/* zero out all of memory */
func (memory *Memory) Clear(){
    *memory = Memory{}
}
